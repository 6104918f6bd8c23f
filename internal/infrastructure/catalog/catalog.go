// Package catalog holds the fallback builder, supplier and bank options.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed fallback_catalog.yaml
var fallbackYAML []byte

var ErrEmptyCatalog = errors.New("catalog has no options")

// Fallback parses the embedded fallback catalog.
func Fallback() (entities.Catalog, error) {
	return Parse(fallbackYAML)
}

// MustFallback is Fallback for program start; it panics on a broken embed.
func MustFallback() entities.Catalog {
	c, err := Fallback()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document. Blank names are dropped; every list must
// keep at least one entry.
func Parse(data []byte) (entities.Catalog, error) {
	var raw entities.Catalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return entities.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	c := entities.Catalog{
		Builders:  cleanNames(raw.Builders),
		Suppliers: cleanNames(raw.Suppliers),
	}
	for _, b := range raw.Banks {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}
		c.Banks = append(c.Banks, entities.Bank{Name: name, Rate: b.Rate})
	}

	switch {
	case len(c.Builders) == 0:
		return entities.Catalog{}, fmt.Errorf("%w: builders", ErrEmptyCatalog)
	case len(c.Suppliers) == 0:
		return entities.Catalog{}, fmt.Errorf("%w: suppliers", ErrEmptyCatalog)
	case len(c.Banks) == 0:
		return entities.Catalog{}, fmt.Errorf("%w: banks", ErrEmptyCatalog)
	}
	return c, nil
}

func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

package usecase

import (
	"fmt"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
)

const (
	defaultBedrooms     = 3
	defaultBathrooms    = 2
	defaultDepartment   = "Cortés"
	defaultMunicipality = "San Pedro Sula"
	defaultNeighborhood = "Residencial de referencia"
	defaultNotes        = "Sin notas adicionales"
)

// sanitizeAttributes turns the raw questionnaire answers into a design with
// every field populated.
func sanitizeAttributes(a entities.HouseAttributes) entities.HouseDesign {
	notes := strings.TrimSpace(a.AdditionalNotes)
	if notes == "" || strings.EqualFold(notes, "no") {
		notes = defaultNotes
	}
	return entities.HouseDesign{
		HouseType:       orDefault(a.HouseType, pricing.DefaultHouseType),
		AreaVaras:       pricing.ParseArea(a.AreaVaras),
		Bedrooms:        pricing.ParseCount(a.Bedrooms, defaultBedrooms),
		Bathrooms:       pricing.ParseCount(a.Bathrooms, defaultBathrooms),
		Department:      orDefault(a.Department, defaultDepartment),
		Municipality:    orDefault(a.Municipality, defaultMunicipality),
		Neighborhood:    orDefault(a.Neighborhood, defaultNeighborhood),
		HasPool:         strings.HasPrefix(strings.ToUpper(strings.TrimSpace(a.Pool)), "S"),
		AdditionalNotes: notes,
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func blueprintPrompt(d entities.HouseDesign) string {
	pool := "No incluir piscina"
	if d.HasPool {
		pool = "Incluir piscina"
	}
	return fmt.Sprintf(`Genera un PLANO TÉCNICO ARQUITECTÓNICO de una casa residencial en Honduras.

Características:
- Tipo de casa: %s
- Área aproximada: %d varas cuadradas
- Habitaciones: %d
- Baños: %d
- Ubicación de referencia: %s, %s, %s
- Piscina: %s

Formato:
- Vista superior tipo blueprint / CAD.
- Fondo azul con líneas blancas o claras.
- Paredes marcadas con líneas fuertes.
- Puertas y ventanas visibles.
- Etiquetas de áreas principales (sala, comedor, cocina, habitaciones, baños).
- Medidas aproximadas, no exactas.`,
		d.HouseType, d.AreaVaras, d.Bedrooms, d.Bathrooms,
		d.Neighborhood, d.Municipality, d.Department, pool)
}

func renderPrompt(d entities.HouseDesign) string {
	pool := "No mostrar piscina"
	if d.HasPool {
		pool = "Incluir piscina visible en el entorno"
	}
	return fmt.Sprintf(`Genera un RENDER ILUSTRADO de la FACHADA de una casa residencial en Honduras.

Características:
- Tipo de casa: %s
- Área aproximada: %d varas cuadradas.
- Habitaciones: %d
- Baños: %d
- Piscina: %s

Estilo:
- Ilustración arquitectónica, no hiperrealista.
- Fachada moderna y limpia.
- Colores neutros y cálidos.
- Iluminación agradable, estilo atardecer suave.
- Entorno con vegetación moderada.

Notas adicionales del cliente:
%s`,
		d.HouseType, d.AreaVaras, d.Bedrooms, d.Bathrooms, pool, d.AdditionalNotes)
}

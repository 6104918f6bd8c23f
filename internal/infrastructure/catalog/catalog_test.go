package catalog

import (
	"errors"
	"testing"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	c, err := Fallback()
	require.NoError(t, err)
	require.Equal(t, []string{"Inversiones Acrópolis"}, c.Builders)
	require.Equal(t, []string{"Ferretería Monterroso", "Sin preferencia de ferretería"}, c.Suppliers)
	require.Equal(t, []entities.Bank{
		{Name: "Banco Atlántida", Rate: 9.5},
		{Name: "Sin preferencia de banco", Rate: 0},
	}, c.Banks)
	require.True(t, entities.IsNoPreference(c.Banks[len(c.Banks)-1].Name))
}

func TestParse(t *testing.T) {
	t.Run("trims and drops blank names", func(t *testing.T) {
		c, err := Parse([]byte(`
builders: ["  Constructora Uno ", ""]
suppliers: ["Ferretería Dos"]
banks:
  - name: " Banco Tres "
    rate: 12.25
  - name: ""
    rate: 3
`))
		require.NoError(t, err)
		require.Equal(t, []string{"Constructora Uno"}, c.Builders)
		require.Equal(t, []entities.Bank{{Name: "Banco Tres", Rate: 12.25}}, c.Banks)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := Parse([]byte("builders: [A]\nsuppliers: []\nbanks: [{name: B}]\n"))
		require.True(t, errors.Is(err, ErrEmptyCatalog))
		require.ErrorContains(t, err, "suppliers")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("builders: [unterminated"))
		require.Error(t, err)
	})
}

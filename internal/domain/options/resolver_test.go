package options

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var builders = []string{"Inversiones Acrópolis", "Constructora Valle", "Sin preferencia de constructora"}

func TestResolve_ByNumber(t *testing.T) {
	for i := range builders {
		require.Equal(t, builders[i], Resolve(strconv.Itoa(i+1), builders))
	}
	require.Equal(t, builders[1], Resolve("  2 ", builders))
	require.Equal(t, builders[2], Resolve("3. la última", builders))
}

func TestResolve_OutOfRangeNumberPassesThrough(t *testing.T) {
	require.Equal(t, "0", Resolve("0", builders))
	require.Equal(t, "4", Resolve("4", builders))
	require.Equal(t, "-1", Resolve("-1", builders))
}

func TestResolve_ByText(t *testing.T) {
	require.Equal(t, builders[1], Resolve("constructora valle", builders))
	require.Equal(t, builders[0], Resolve("quiero inversiones acrópolis por favor", builders))
}

func TestResolve_ListOrderBeatsExactMatch(t *testing.T) {
	require.Equal(t, "casa", Resolve("casa moderna", []string{"casa", "casa moderna"}))
	require.Equal(t, "casa moderna", Resolve("casa moderna", []string{"casa moderna", "casa"}))
}

func TestResolve_NoMatchPassesThrough(t *testing.T) {
	require.Equal(t, "Mi propia empresa", Resolve("Mi propia empresa", builders))
	require.Equal(t, "", Resolve("", nil))
}

func TestResolve_Idempotent(t *testing.T) {
	first := Resolve("valle", builders)
	second := Resolve("valle", builders)
	require.Equal(t, first, second)
}

func TestFormat(t *testing.T) {
	got := Format("Opciones de ferretería:", []string{"Ferretería Monterroso", "Sin preferencia de ferretería"})
	require.Equal(t, "Opciones de ferretería:\n1. Ferretería Monterroso\n2. Sin preferencia de ferretería", got)
}

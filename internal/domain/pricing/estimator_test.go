package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	cases := []struct {
		name      string
		houseType string
		area      float64
		pool      bool
		want      int64
	}{
		{name: "modern", houseType: "Casa Moderna", area: 200, want: 1_300_000},
		{name: "modern with pool", houseType: "Casa Moderna", area: 200, pool: true, want: 1_600_000},
		{name: "rustic accent", houseType: "Casa Rústica", area: 100, want: 280_000},
		{name: "rustic plain", houseType: "rustica", area: 100, want: 280_000},
		{name: "economy", houseType: "ECONÓMICA", area: 10, want: 28_000},
		{name: "simple", houseType: "sencilla", area: 10, want: 28_000},
		{name: "minimalist", houseType: "Minimalista", area: 10, want: 65_000},
		{name: "premium checked first", houseType: "moderna económica", area: 10, want: 65_000},
		{name: "tropical uses residential", houseType: "tropical", area: 10, want: 45_000},
		{name: "defaults", houseType: "", area: 0, want: 900_000},
		{name: "fractional area rounds", houseType: "tropical", area: 10.5, want: 47_250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Estimate(tc.houseType, tc.area, tc.pool))
		})
	}
}

func TestParseArea(t *testing.T) {
	require.Equal(t, 250, ParseArea("250 varas"))
	require.Equal(t, DefaultAreaVaras, ParseArea(""))
	require.Equal(t, DefaultAreaVaras, ParseArea("doscientas"))
	require.Equal(t, DefaultAreaVaras, ParseArea("0"))
}

func TestParseCount(t *testing.T) {
	require.Equal(t, 4, ParseCount(" 4 habitaciones", 3))
	require.Equal(t, 3, ParseCount("tres", 3))
}

func TestFormatLempiras(t *testing.T) {
	require.Equal(t, "0", FormatLempiras(0))
	require.Equal(t, "999", FormatLempiras(999))
	require.Equal(t, "1,000", FormatLempiras(1000))
	require.Equal(t, "1,300,000", FormatLempiras(1_300_000))
	require.Equal(t, "-28,000", FormatLempiras(-28_000))
}

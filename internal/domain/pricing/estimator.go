// Package pricing holds the fixed construction price table used for
// pre-quotes. Amounts are in lempiras.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultAreaVaras = 200
	DefaultHouseType = "casa residencial"

	RateResidential = 4500
	RatePremium     = 6500
	RateEconomy     = 2800
	PoolSurcharge   = 300_000
)

var (
	premiumKeywords = []string{"moderna", "minimalista"}
	economyKeywords = []string{"rústica", "rustica", "económica", "economica", "sencilla"}
)

// RatePerVara returns the price per square vara for a house type. Premium
// keywords are checked before economy keywords.
func RatePerVara(houseType string) int64 {
	t := strings.ToLower(houseType)
	if containsAny(t, premiumKeywords) {
		return RatePremium
	}
	if containsAny(t, economyKeywords) {
		return RateEconomy
	}
	return RateResidential
}

// Estimate returns round(area * rate) plus the pool surcharge.
// A non-positive area falls back to DefaultAreaVaras and an empty house type
// is priced as DefaultHouseType.
func Estimate(houseType string, areaVaras float64, hasPool bool) int64 {
	if strings.TrimSpace(houseType) == "" {
		houseType = DefaultHouseType
	}
	if areaVaras <= 0 || math.IsNaN(areaVaras) || math.IsInf(areaVaras, 0) {
		areaVaras = DefaultAreaVaras
	}
	total := int64(math.Round(areaVaras * float64(RatePerVara(houseType))))
	if hasPool {
		total += PoolSurcharge
	}
	return total
}

// ParseArea parses the leading integer of a free-text area answer ("250 varas").
// Missing or unparsable input yields DefaultAreaVaras.
func ParseArea(raw string) int {
	return ParseCount(raw, DefaultAreaVaras)
}

// ParseCount parses the leading integer of raw, returning def when there is
// none or it is zero.
func ParseCount(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return def
	}
	return n
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

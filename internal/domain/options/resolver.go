// Package options matches chat input against a numbered list of choices.
package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve maps raw chat input to one of the given options.
//
// A number n in [1, len(options)] selects options[n-1]. Otherwise options are
// tried in list order and the first one that equals the input or is contained
// in it (case-insensitive) wins. An exact match does not outrank an earlier
// substring match. When nothing matches the raw input is returned
// unchanged and the caller keeps it as the chosen value.
func Resolve(raw string, options []string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if n, ok := leadingInt(lower); ok && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	// Exact and substring matches share one pass in option order.
	for _, opt := range options {
		o := strings.ToLower(opt)
		if o == lower || strings.Contains(lower, o) {
			return opt
		}
	}
	return raw
}

// Format renders options as a numbered list under a label.
func Format(label string, options []string) string {
	var b strings.Builder
	b.WriteString(label)
	for i, opt := range options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}
	return b.String()
}

// leadingInt parses the leading decimal digits of s, so "2." and "2 por favor"
// both select the second option.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

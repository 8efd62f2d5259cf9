// Package address derives street and city components from free-form Centris
// address strings. The heuristics never fail; unparseable input yields "".
package address

import "strings"

// Street returns the portion of the address before the first comma, or the
// whole trimmed string when no comma is present.
func Street(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if idx := strings.Index(addr, ","); idx >= 0 {
		return strings.TrimSpace(addr[:idx])
	}
	return addr
}

// City returns the first comma-delimited segment after the street part,
// stripped of a trailing parenthesized qualifier such as "(Le Plateau)".
// Addresses without a comma carry no city component.
func City(addr string) string {
	addr = strings.TrimSpace(addr)
	idx := strings.Index(addr, ",")
	if idx < 0 {
		return ""
	}

	rest := addr[idx+1:]
	if next := strings.Index(rest, ","); next >= 0 {
		rest = rest[:next]
	}
	rest = strings.TrimSpace(rest)

	if open := strings.Index(rest, "("); open >= 0 {
		rest = strings.TrimSpace(rest[:open])
	}
	return rest
}

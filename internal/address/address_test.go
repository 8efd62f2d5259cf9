package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreet(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"street before first comma", "123 Main St, Springfield (Downtown)", "123 Main St"},
		{"no comma returns whole string", "456 Elm Street", "456 Elm Street"},
		{"quebec address", "1234 Rue Saint-Denis, Montréal (Le Plateau)", "1234 Rue Saint-Denis"},
		{"leading and trailing spaces", "  789 Oak Ave , Laval ", "789 Oak Ave"},
		{"empty input", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Street(tt.addr))
		})
	}
}

func TestCity(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"city with district qualifier", "123 Main St, Springfield (Downtown)", "Springfield"},
		{"city without qualifier", "567 Avenue du Parc, Québec", "Québec"},
		{"extra segments after city", "10 Rue A, Montréal (Ville-Marie), QC, H3B 4W8", "Montréal"},
		{"no comma means no city", "456 Elm Street", ""},
		{"empty input", "", ""},
		{"comma with empty city", "123 Main St,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, City(tt.addr))
		})
	}
}

// Package export turns reviewed property records into downloadable CSV and
// XLSX documents.
package export

import (
	"strings"

	"centris-gateway/internal/models"
)

// utf8BOM keeps accented French headers intact when the file is opened in
// Excel, which otherwise assumes a legacy encoding.
const utf8BOM = "\xEF\xBB\xBF"

// enhancedHeaders is the full Centris column layout.
var enhancedHeaders = []string{
	"Centris #",
	"Adresse complète",
	"Quartier",
	"Type de propriété",
	"Prix actuel",
	"Prix original",
	"Propriétaire(s): nom(s) et adresse(s)",
	"Représentant(s): nom(s) et adresse(s)",
	"Courtier(s): nom(s)",
	"Courtier(s): téléphone(s)",
	"Courtier(s): courriel(s)",
}

// basicHeaders is the reduced layout used for demo records.
var basicHeaders = []string{"Adresse", "Prix", "Type", "Ville", "Rue"}

// EncodeCSV renders the records as a CSV document. The column layout is
// chosen from the first record only: records carrying a Centris number use
// the full layout, everything else the basic one. encoding/csv is not used
// here because the existing consumers expect every field quoted and a BOM
// prefix, neither of which it can produce.
func EncodeCSV(properties []models.PropertyRecord) []byte {
	enhanced := len(properties) > 0 && properties[0].IsEnhanced()

	headers := basicHeaders
	if enhanced {
		headers = enhancedHeaders
	}

	lines := make([]string, 0, len(properties)+1)
	lines = append(lines, encodeRow(headers))

	for _, p := range properties {
		var fields []string
		if enhanced {
			fields = []string{
				p.ID, p.Address, p.District, p.Type, p.Price, p.OriginalPrice,
				p.Owner, p.Representative, p.BrokerName, p.BrokerPhone, p.BrokerEmail,
			}
		} else {
			fields = []string{p.Address, p.Price, p.Type, p.City, p.Street}
		}
		lines = append(lines, encodeRow(fields))
	}

	return []byte(utf8BOM + strings.Join(lines, "\r\n") + "\r\n")
}

// encodeRow quotes every field unconditionally, doubling embedded quotes.
func encodeRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

package extractor

import "centris-gateway/internal/models"

// demoMessage is returned alongside the demo dataset whenever real
// extraction is unavailable.
const demoMessage = "Extraction de démonstration: le service d'extraction est indisponible, données d'exemple retournées"

// demoProperties returns the fixed demonstration dataset served when the
// extraction backend is unreachable or unconfigured. A fresh slice is built
// on each call so callers can mutate their copy safely.
func demoProperties() []models.PropertyRecord {
	return []models.PropertyRecord{
		{
			Address: "1234 Rue Saint-Denis, Montréal (Le Plateau)",
			Price:   "450 000 $",
			Type:    "Condo",
			City:    "Montréal",
			Street:  "1234 Rue Saint-Denis",
		},
		{
			Address: "567 Avenue du Parc, Québec",
			Price:   "625 000 $",
			Type:    "Maison",
			City:    "Québec",
			Street:  "567 Avenue du Parc",
		},
		{
			Address: "89 Boulevard René-Lévesque, Laval (Chomedey)",
			Price:   "389 000 $",
			Type:    "Duplex",
			City:    "Laval",
			Street:  "89 Boulevard René-Lévesque",
		},
	}
}

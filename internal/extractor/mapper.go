package extractor

import (
	"fmt"

	"centris-gateway/internal/address"
	"centris-gateway/internal/models"
)

// Backend column names. The extraction backend emits display-oriented French
// keys; they are remapped to the record's stable JSON fields here.
const (
	keyCentrisNumber  = "Centris #"
	keyFullAddress    = "Adresse complète"
	keyDistrict       = "Quartier"
	keyPropertyType   = "Type de propriété"
	keyCurrentPrice   = "Prix actuel"
	keyOriginalPrice  = "Prix original"
	keyOwners         = "Propriétaire(s): nom(s) et adresse(s)"
	keyRepresentative = "Représentant(s): nom(s) et adresse(s)"
	keyBrokerNames    = "Courtier(s): nom(s)"
	keyBrokerPhones   = "Courtier(s): téléphone(s)"
	keyBrokerEmails   = "Courtier(s): courriel(s)"
)

// mapRecord converts one upstream key/value map into a PropertyRecord.
// The backend emits the full French layout for complete listings and the
// plain lowercase layout (address/price/type/city/street) on its reduced
// paths, so both are read, French keys first. Absent keys default to empty
// strings; city and street are backfilled from the full address when the
// backend does not supply them.
func mapRecord(raw map[string]interface{}) models.PropertyRecord {
	record := models.PropertyRecord{
		ID:             stringValue(raw, keyCentrisNumber),
		Address:        firstValue(raw, keyFullAddress, "address"),
		District:       stringValue(raw, keyDistrict),
		Type:           firstValue(raw, keyPropertyType, "type"),
		Price:          firstValue(raw, keyCurrentPrice, "price"),
		OriginalPrice:  stringValue(raw, keyOriginalPrice),
		Owner:          stringValue(raw, keyOwners),
		Representative: stringValue(raw, keyRepresentative),
		BrokerName:     stringValue(raw, keyBrokerNames),
		BrokerPhone:    stringValue(raw, keyBrokerPhones),
		BrokerEmail:    stringValue(raw, keyBrokerEmails),
		City:           stringValue(raw, "city"),
		Street:         stringValue(raw, "street"),
	}

	if record.City == "" {
		record.City = address.City(record.Address)
	}
	if record.Street == "" {
		record.Street = address.Street(record.Address)
	}

	return record
}

func mapRecords(raw []map[string]interface{}) []models.PropertyRecord {
	records := make([]models.PropertyRecord, 0, len(raw))
	for _, item := range raw {
		records = append(records, mapRecord(item))
	}
	return records
}

// firstValue returns the first key that carries a non-empty value.
func firstValue(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := stringValue(raw, key); value != "" {
			return value
		}
	}
	return ""
}

func stringValue(raw map[string]interface{}, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

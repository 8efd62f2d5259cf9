package models

// Extraction methods reported to the client.
const (
	MethodPythonBackend = "python_backend"
	MethodDemoData      = "demo_data"
)

// Export formats accepted on the export endpoint.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// PropertyRecord is a single Centris listing. All fields are optional
// strings; enhanced records carry the Centris number in ID while basic
// records only populate the address-derived fields.
type PropertyRecord struct {
	ID             string `json:"id,omitempty"`
	Address        string `json:"address,omitempty"`
	District       string `json:"district,omitempty"`
	Type           string `json:"type,omitempty"`
	Price          string `json:"price,omitempty"`
	OriginalPrice  string `json:"original_price,omitempty"`
	Owner          string `json:"owner,omitempty"`
	Representative string `json:"representative,omitempty"`
	BrokerName     string `json:"broker_name,omitempty"`
	BrokerPhone    string `json:"broker_phone,omitempty"`
	BrokerEmail    string `json:"broker_email,omitempty"`
	City           string `json:"city,omitempty"`
	Street         string `json:"street,omitempty"`
}

// IsEnhanced reports whether the record came from the full Centris layout.
func (p PropertyRecord) IsEnhanced() bool {
	return p.ID != ""
}

// ExtractionResult is the response body of the extraction endpoint. The
// shape is identical whether the data came from the upstream extractor or
// from the built-in demo set.
type ExtractionResult struct {
	Success          bool             `json:"success"`
	Filename         string           `json:"filename"`
	TotalProperties  int              `json:"total_properties"`
	Properties       []PropertyRecord `json:"properties"`
	Message          string           `json:"message"`
	ExtractionMethod string           `json:"extraction_method"`
}

// ExportRequest is the body of the export endpoint. Format defaults to CSV
// when empty.
type ExportRequest struct {
	Filename   string           `json:"filename"`
	Properties []PropertyRecord `json:"properties"`
	Format     string           `json:"format,omitempty"`
}

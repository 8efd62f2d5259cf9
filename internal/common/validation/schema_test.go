package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExportRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid payload with properties",
			payload: map[string]interface{}{
				"filename": "listing.pdf",
				"properties": []interface{}{
					map[string]interface{}{"address": "123 Rue Principale", "price": "450 000 $"},
				},
			},
			wantErr: false,
		},
		{
			name: "empty properties array is valid",
			payload: map[string]interface{}{
				"properties": []interface{}{},
			},
			wantErr: false,
		},
		{
			name:    "missing properties",
			payload: map[string]interface{}{"filename": "listing.pdf"},
			wantErr: true,
		},
		{
			name: "properties not an array",
			payload: map[string]interface{}{
				"properties": "not-an-array",
			},
			wantErr: true,
		},
		{
			name: "unsupported format value",
			payload: map[string]interface{}{
				"format":     "pdf",
				"properties": []interface{}{},
			},
			wantErr: true,
		},
		{
			name: "xlsx format accepted",
			payload: map[string]interface{}{
				"format":     "xlsx",
				"properties": []interface{}{},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExportRequest(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

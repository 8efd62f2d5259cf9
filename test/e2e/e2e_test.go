// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centris-gateway/internal/common/config"
	"centris-gateway/internal/common/logger"
	"centris-gateway/internal/common/observability"
	"centris-gateway/internal/extractor"
	"centris-gateway/internal/models"
	"centris-gateway/internal/server"
)

func startGateway(t *testing.T, upstreamURL string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "centris-gateway"
	cfg.App.Version = "1.0.0"
	cfg.Server.MaxUploadBytes = 10 * 1024 * 1024
	cfg.Export.SheetName = "Centris Data"

	client := extractor.NewClient(upstreamURL, 2*time.Second, 500*time.Millisecond)
	svc := extractor.NewService(client, logger.NewNoOpLogger())
	srv := server.New(cfg, logger.NewNoOpLogger(), svc, &observability.Observability{})

	gateway := httptest.NewServer(srv.Handler())
	t.Cleanup(gateway.Close)
	return gateway
}

func uploadPDF(t *testing.T, gatewayURL, filename string, content []byte) models.ExtractionResult {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(gatewayURL+"/extract-pdf", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.ExtractionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// TestExtractThenExport walks the full workflow: upload a document, review
// the extraction result, export it as CSV.
func TestExtractThenExport(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"api": "healthy"}`))
		case "/extract-pdf":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"success": true,
				"filename": "listing.pdf",
				"total_properties": 2,
				"properties": [
					{"Centris #": "28467913", "Adresse complète": "1500 Rue Sherbrooke O., Montréal (Ville-Marie)", "Prix actuel": "899 000 $", "Type de propriété": "Condo"},
					{"Centris #": "19283746", "Adresse complète": "22 Rue des Érables, Laval", "Prix actuel": "540 000 $", "Type de propriété": "Maison"}
				],
				"message": "ok"
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	gateway := startGateway(t, upstream.URL)

	// Health reflects the live backend.
	resp, err := http.Get(gateway.URL + "/health")
	require.NoError(t, err)
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "healthy", health["status"])

	// Extraction goes through the real backend.
	result := uploadPDF(t, gateway.URL, "listing.pdf", []byte("%PDF-1.4 test"))
	assert.Equal(t, models.MethodPythonBackend, result.ExtractionMethod)
	require.Equal(t, 2, result.TotalProperties)
	assert.Equal(t, "28467913", result.Properties[0].ID)

	// Export the reviewed records.
	exportBody, err := json.Marshal(models.ExportRequest{
		Filename:   result.Filename,
		Properties: result.Properties,
	})
	require.NoError(t, err)

	resp, err = http.Post(gateway.URL+"/export-excel", "application/json", bytes.NewReader(exportBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="listing.csv"`, resp.Header.Get("Content-Disposition"))

	csvData, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	content := string(csvData)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"))
	assert.Contains(t, content, `"Centris #"`)
	assert.Contains(t, content, `"28467913"`)
	assert.Contains(t, content, "\r\n")
}

// TestExtractFallsBackWhenBackendDies covers the availability contract: the
// caller still gets a complete result after the backend disappears.
func TestExtractFallsBackWhenBackendDies(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api": "healthy"}`))
	}))

	gateway := startGateway(t, upstream.URL)
	upstream.Close()

	result := uploadPDF(t, gateway.URL, "listing.pdf", []byte("%PDF-1.4"))
	assert.True(t, result.Success)
	assert.Equal(t, models.MethodDemoData, result.ExtractionMethod)
	assert.Equal(t, 3, result.TotalProperties)

	resp, err := http.Get(gateway.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "degraded", health["status"])
}

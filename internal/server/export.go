package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "centris-gateway/internal/common/errors"
	"centris-gateway/internal/common/metrics"
	"centris-gateway/internal/common/validation"
	"centris-gateway/internal/export"
	"centris-gateway/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExport validates the reviewed records and streams back a CSV file,
// or an XLSX workbook when the request asks for one.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, apperrors.NewInvalidExportBodyError(err.Error()))
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		s.writeError(w, apperrors.NewInvalidExportBodyError("request body is not valid JSON"))
		return
	}
	if err := validation.ValidateExportRequest(payload); err != nil {
		s.writeError(w, apperrors.NewInvalidPropertiesError(err.Error()))
		return
	}

	var req models.ExportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, apperrors.NewInvalidExportBodyError(err.Error()))
		return
	}

	format := req.Format
	if format == "" {
		format = models.FormatCSV
	}

	switch format {
	case models.FormatCSV:
		s.serveDownload(w, export.OutputFilename(req.Filename, s.cfg.Export.DefaultFilename, "csv"),
			"text/csv; charset=utf-8", export.EncodeCSV(req.Properties))
	case models.FormatXLSX:
		data, err := export.EncodeXLSX(req.Properties, s.cfg.Export.SheetName)
		if err != nil {
			s.logger.Error("Workbook export failed", map[string]interface{}{
				"error": err.Error(),
			})
			s.writeError(w, apperrors.NewExportFailedError(err))
			return
		}
		s.serveDownload(w, export.OutputFilename(req.Filename, s.cfg.Export.DefaultFilename, "xlsx"), xlsxContentType, data)
	default:
		s.writeError(w, apperrors.NewUnsupportedFormatError(format))
		return
	}

	metrics.ExportsTotal.WithLabelValues(format).Inc()
}

func (s *Server) serveDownload(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write download", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

package extractor

import (
	"context"
	"fmt"

	apperrors "centris-gateway/internal/common/errors"
	"centris-gateway/internal/common/logger"
	"centris-gateway/internal/common/metrics"
	"centris-gateway/internal/models"
)

// Fallback reasons recorded on the fallback counter.
const (
	reasonNotConfigured = "not_configured"
	reasonTimeout       = "timeout"
	reasonUnreachable   = "unreachable"
	reasonUpstreamError = "upstream_error"
)

// Service mediates between the upload endpoint and the extraction backend.
// It never fails: any backend problem is absorbed into the demo dataset so
// the caller always receives a complete ExtractionResult.
type Service struct {
	client *Client
	logger logger.Logger
}

func NewService(client *Client, log logger.Logger) *Service {
	return &Service{
		client: client,
		logger: log,
	}
}

// Extract forwards the document to the backend when one is configured and
// falls back to demo data on any failure.
func (s *Service) Extract(ctx context.Context, filename string, data []byte) models.ExtractionResult {
	if !s.client.Configured() {
		stdErr := apperrors.NewNoBackendConfiguredError()
		s.logger.Info("No extraction backend configured, serving demo data", map[string]interface{}{
			"filename": filename,
			"code":     string(stdErr.Code),
		})
		return s.demoResult(filename, reasonNotConfigured)
	}

	resp, err := s.client.Extract(ctx, filename, data)
	if err != nil {
		stdErr := apperrors.Normalize(err)
		s.logger.Warn("Extraction backend failed, falling back to demo data", map[string]interface{}{
			"filename":  filename,
			"code":      string(stdErr.Code),
			"retryable": stdErr.Retryable,
			"error":     stdErr.Details,
		})
		return s.demoResult(filename, fallbackReason(stdErr.Code))
	}

	properties := mapRecords(resp.Properties)

	s.logger.Info("Extraction completed", map[string]interface{}{
		"filename":         filename,
		"total_properties": len(properties),
	})
	metrics.ExtractionsTotal.WithLabelValues(models.MethodPythonBackend).Inc()

	return models.ExtractionResult{
		Success:          true,
		Filename:         filename,
		TotalProperties:  len(properties),
		Properties:       properties,
		Message:          fmt.Sprintf("Extraction réussie: %d propriétés trouvées", len(properties)),
		ExtractionMethod: models.MethodPythonBackend,
	}
}

// Probe reports backend liveness for the health endpoint.
func (s *Service) Probe(ctx context.Context) bool {
	return s.client.Probe(ctx)
}

func (s *Service) demoResult(filename, reason string) models.ExtractionResult {
	metrics.ExtractionsTotal.WithLabelValues(models.MethodDemoData).Inc()
	metrics.ExtractionFallbacks.WithLabelValues(reason).Inc()

	properties := demoProperties()
	return models.ExtractionResult{
		Success:          true,
		Filename:         filename,
		TotalProperties:  len(properties),
		Properties:       properties,
		Message:          demoMessage,
		ExtractionMethod: models.MethodDemoData,
	}
}

// fallbackReason maps the upstream error taxonomy onto metric labels.
func fallbackReason(code apperrors.ErrorCode) string {
	switch code {
	case apperrors.ErrCodeUpstreamTimeout:
		return reasonTimeout
	case apperrors.ErrCodeUpstreamUnreachable:
		return reasonUnreachable
	default:
		return reasonUpstreamError
	}
}

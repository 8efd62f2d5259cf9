package server

import (
	"fmt"
	"net/http"
)

// handleRoot serves the service banner. The mux routes every unknown path
// here, so anything but "/" is a 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Centris PDF Extraction API",
		"status":  "running",
		"version": s.cfg.App.Version,
	})
}

// handleHealth reports gateway health. The status field reflects the
// extraction backend probe so operators can tell demo mode from live mode;
// the rest of the shape is fixed for the front end.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "degraded"
	if s.extractor.Probe(r.Context()) {
		status = "healthy"
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"api":                "healthy",
		"extraction_service": "ready",
		"supported_formats":  []string{"PDF"},
		"max_file_size":      fmt.Sprintf("%dMB", s.cfg.Server.MaxUploadBytes/(1024*1024)),
		"status":             status,
	})
}

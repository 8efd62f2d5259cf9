package server

import (
	"errors"
	"io"
	"net/http"

	apperrors "centris-gateway/internal/common/errors"
)

// handleExtract accepts a multipart PDF upload and responds with an
// extraction result. Upstream failures never surface here; the mediator
// absorbs them into demo data, so the only client-visible rejections are a
// missing file part and an oversized body.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, apperrors.NewFileTooLargeError(limit))
			return
		}
		s.writeError(w, apperrors.NewNoFileProvidedError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, apperrors.NewFileTooLargeError(limit))
			return
		}
		s.writeError(w, apperrors.NewInternalError(err))
		return
	}
	if len(data) == 0 {
		s.writeError(w, apperrors.NewNoFileProvidedError())
		return
	}

	result := s.extractor.Extract(r.Context(), header.Filename, data)
	s.writeJSON(w, http.StatusOK, result)
}

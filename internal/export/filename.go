package export

import "strings"

// DefaultBaseName is used when the client supplies no filename.
const DefaultBaseName = "extraction_centris"

// OutputFilename derives the download filename from the uploaded document's
// name, swapping a trailing .pdf for the export extension. Names without a
// .pdf suffix fall back to defaultBase (or DefaultBaseName when empty). ext
// is passed without a dot, e.g. "csv".
func OutputFilename(uploaded, defaultBase, ext string) string {
	if defaultBase == "" {
		defaultBase = DefaultBaseName
	}

	name := strings.TrimSpace(uploaded)
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return defaultBase + "." + ext
	}

	return name[:len(name)-len(".pdf")] + "." + ext
}

package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
)

// loadFile reads a JSON array of catalog records from path. One loader
// serves every catalog; the record shape is the type parameter.
//
// Load failures are not fatal: a missing or malformed file yields an
// empty slice and a warning so the rest of the API keeps working.
// Affected operations then report not-found for any id.
func loadFile[T any](path string) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Catalog file unreadable, using empty catalog", "path", path, "error", err)
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("Catalog file malformed, using empty catalog", "path", path, "error", err)
		return []T{}
	}
	return records
}

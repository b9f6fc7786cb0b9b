package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/gravnet/internal/body"
)

type ExportData struct {
	RunMetadata
	History []body.Accel `json:"history"`
}

// ExportJSON writes a run's metadata and full acceleration history as
// indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, history []body.Accel) error {
	data := ExportData{
		RunMetadata: *meta,
		History:     history,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

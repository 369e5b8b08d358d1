package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrReportNotFound is returned when the analysis document does not exist.
var ErrReportNotFound = errors.New("analysis document not found")

// LoadReport reads an analysis service response from a JSON file and
// assembles the report aggregate. The file is the saved output of the
// external analysis service; EquityEngine never fetches it over the network.
//
// The generation timestamp is set to the current time unless the document
// carries its own, so re-exporting an old analysis stamps a fresh date.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided document path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode analysis document %s: %w", path, err)
	}

	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}
	return &r, nil
}

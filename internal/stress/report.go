package stress

import (
	"time"

	"github.com/mrz1836/rwfile/internal/rwfile"
)

// Report summarizes a stress run.
type Report struct {
	RunID  string `json:"run_id"`
	Path   string `json:"path"`
	Config Config `json:"config"`

	Writes     int64 `json:"writes"`
	Reads      int64 `json:"reads"`
	EmptyReads int64 `json:"empty_reads"`

	Size         int64         `json:"size"`
	ExpectedSize int64         `json:"expected_size"`
	StartedAt    time.Time     `json:"started_at"`
	Elapsed      time.Duration `json:"elapsed"`

	Lock         rwfile.Stats  `json:"lock"`
	Verification *Verification `json:"verification,omitempty"`
}

// Passed reports whether the run completed and the file verified.
func (r *Report) Passed() bool {
	return r.Verification != nil && r.Size == r.ExpectedSize
}

// Verification is the result of checking a file made of repeated markers.
type Verification struct {
	Path    string `json:"path"`
	Marker  string `json:"marker"`
	Size    int64  `json:"size"`
	Records int64  `json:"records"`
}

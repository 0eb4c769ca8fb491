package bench

import (
	"encoding/json"
	"fmt"
	"os"
)

// Report captures the outcome of one workload run.
type Report struct {
	Structure  string  `json:"structure"`
	Pattern    string  `json:"pattern"`
	Seed       int64   `json:"seed"`
	Inserts    int     `json:"inserts"`
	Size       int     `json:"size"`
	Height     int     `json:"height"`
	DurationMS int64   `json:"duration_ms"`
	OpsPerSec  float64 `json:"ops_per_sec"`
	MemAlloc   uint64  `json:"mem_alloc"`
	MemSys     uint64  `json:"mem_sys"`
	NumGC      uint32  `json:"num_gc"`
}

// WriteReport writes the report to filename as indented JSON.
func WriteReport(filename string, r Report) error {
	bz, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	return os.WriteFile(filename, bz, 0o644)
}

// ReadReport reads a report written by WriteReport.
func ReadReport(filename string) (Report, error) {
	bz, err := os.ReadFile(filename)
	if err != nil {
		return Report{}, fmt.Errorf("error reading report file: %w", err)
	}
	var r Report
	if err := json.Unmarshal(bz, &r); err != nil {
		return Report{}, fmt.Errorf("error unmarshaling report file: %w", err)
	}
	return r, nil
}

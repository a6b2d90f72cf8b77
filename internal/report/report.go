package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two report-producing commands.
type Kind string

const (
	KindCheck Kind = "check"
	KindDemo  Kind = "demo"
)

// Result records one named step: a connectivity probe, a demo phase.
type Result struct {
	Name     string  `json:"name"`
	Passed   bool    `json:"passed"`
	Detail   string  `json:"detail,omitempty"`
	Duration float64 `json:"duration_seconds"`
	Err      string  `json:"error,omitempty"`
}

// Summary aggregates the results of a finished report.
type Summary struct {
	Total       int     `json:"total"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// Report is the JSON artifact written after a check or demo run.
type Report struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Server    string    `json:"server"`
	CI        bool      `json:"ci_mode,omitempty"`
	StartedAt time.Time `json:"timestamp"`
	Duration  float64   `json:"duration_seconds"`
	Results   []Result  `json:"results"`
	Summary   Summary   `json:"summary"`
}

// New starts a report for the given command kind and server.
func New(kind Kind, server string) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Kind:      kind,
		Server:    server,
		StartedAt: time.Now().UTC(),
	}
}

// Add records a step. A nil err with passed=false is allowed: some steps
// fail on semantics rather than on a transport error.
func (r *Report) Add(name string, passed bool, detail string, d time.Duration, err error) {
	res := Result{
		Name:     name,
		Passed:   passed,
		Detail:   detail,
		Duration: round2(d.Seconds()),
	}
	if err != nil {
		res.Err = err.Error()
	}
	r.Results = append(r.Results, res)
}

// Finish stamps the total duration and computes the summary.
func (r *Report) Finish() {
	r.Duration = round2(time.Since(r.StartedAt).Seconds())

	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		if res.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = round1(float64(s.Passed) / float64(s.Total) * 100)
	}
	r.Summary = s
}

// Failed reports whether any recorded step failed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return true
		}
	}
	return false
}

// Write saves the report under dir as
// supamcp_<kind>_report_<YYYYMMDD_HHMMSS>.json and returns the path.
func (r *Report) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("supamcp_%s_report_%s.json", r.Kind, r.StartedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }

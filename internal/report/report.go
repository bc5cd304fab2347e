// Package report records what a generation run did, per version pair and
// stage, and persists it as YAML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// Outcome is the final status of a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// StageReport describes one pipeline stage for one pair.
type StageReport struct {
	Name     string        `yaml:"name"`
	Skipped  bool          `yaml:"skipped"`
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// PairReport describes the pipeline run for one version pair. Stages holds only
// the stages that were reached.
type PairReport struct {
	Pair      versions.Pair `yaml:"pair"`
	OutputDir string        `yaml:"output_dir,omitempty"`
	Published bool          `yaml:"published"`
	Stages    []StageReport `yaml:"stages"`
}

// RunReport aggregates a whole run.
type RunReport struct {
	RunID   string       `yaml:"run_id"`
	Start   time.Time    `yaml:"start"`
	End     time.Time    `yaml:"end"`
	Outcome Outcome      `yaml:"outcome"`
	Pairs   []PairReport `yaml:"pairs"`
	Error   string       `yaml:"error,omitempty"`
}

// New starts a report for runID.
func New(runID string) *RunReport {
	return &RunReport{RunID: runID, Start: time.Now()}
}

// AddPair appends the result of one pair pipeline, complete or aborted.
func (r *RunReport) AddPair(p PairReport) {
	r.Pairs = append(r.Pairs, p)
}

// Finish stamps the end time and derives the outcome from err.
func (r *RunReport) Finish(err error) {
	r.End = time.Now()
	if err != nil {
		r.Outcome = OutcomeFailed
		r.Error = err.Error()
		return
	}
	r.Outcome = OutcomeSuccess
}

// Duration is the wall time between Start and End.
func (r *RunReport) Duration() time.Duration {
	if r.End.IsZero() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

// Published returns the number of pairs copied to the output directory.
func (r *RunReport) Published() int {
	n := 0
	for _, p := range r.Pairs {
		if p.Published {
			n++
		}
	}
	return n
}

// Summary is a one-line human readable description.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("run=%s outcome=%s pairs=%d published=%d", r.RunID, r.Outcome, len(r.Pairs), r.Published())
}

// Persist writes the report atomically to path, creating parent directories.
func (r *RunReport) Persist(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure report dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename report: %w", err)
	}
	return nil
}

// Load reads a report previously written by Persist.
func Load(path string) (*RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r RunReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse run report: %w", err)
	}
	return &r, nil
}

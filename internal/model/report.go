package model

import "time"

// KindTally aggregates term outcomes for a single kind within a run.
type KindTally struct {
	Terms  int `yaml:"terms"`
	Errors int `yaml:"errors"`
}

// RunReport is the persisted record of one batch run.
type RunReport struct {
	RunID      string             `yaml:"run_id"`
	StartedAt  time.Time          `yaml:"started_at"`
	FinishedAt time.Time          `yaml:"finished_at"`
	Workers    int                `yaml:"workers"`
	Jobs       int                `yaml:"jobs"`
	Results    []TermResult       `yaml:"results"`
	Tally      map[Kind]KindTally `yaml:"tally"`
}

// Elapsed returns the wall-clock duration of the run.
func (r RunReport) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Failures counts results that did not compute.
func (r RunReport) Failures() int {
	failures := 0

	for _, tally := range r.Tally {
		failures += tally.Errors
	}

	return failures
}

// RunSummary is the compact per-run line kept in history.
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	Kinds     string // comma-joined kinds present in the run
	Jobs      int
	Terms     int
	Failures  int
	Elapsed   time.Duration
	Report    Path
}

package worker

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Report aggregates per-record outcomes for one batch run.
type Report struct {
	// RunID uniquely identifies this batch run in logs.
	RunID string `json:"run_id"`
	// Results maps each record key to its outcome.
	Results map[string]Result `json:"results"`
	// Elapsed is the wall-clock duration of the batch.
	Elapsed time.Duration `json:"elapsed"`
}

// NewReport creates an empty report sized for n records.
func NewReport(n int) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Results: make(map[string]Result, n),
	}
}

func (r *Report) add(result Result) {
	r.Results[result.Key] = result
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Sorted returns all results ordered by key for deterministic output.
func (r *Report) Sorted() []Result {
	out := make([]Result, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Failed returns the failed results ordered by key.
func (r *Report) Failed() []Result {
	out := make([]Result, 0)
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

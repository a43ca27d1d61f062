package datarecording

import (
	"os"
	"strings"
	"time"
)

// RunInfoTable is the table that holds the properties of a run.
const RunInfoTable = "run_info"

// RunInfo is one property of a simulation run.
type RunInfo struct {
	Property string
	Value    string
}

// A RunInfoRecorder records how a simulation was started and what it
// produced.
type RunInfoRecorder struct {
	recorder DataRecorder
	entries  []RunInfo
}

// NewRunInfoRecorder creates a RunInfoRecorder and its table.
func NewRunInfoRecorder(recorder DataRecorder) *RunInfoRecorder {
	recorder.CreateTable(RunInfoTable, RunInfo{})

	return &RunInfoRecorder{
		recorder: recorder,
	}
}

// Start records the start time and the command line.
func (r *RunInfoRecorder) Start() {
	r.Set("Start Time", timestamp())
	r.Set("Command", strings.Join(os.Args, " "))
}

// Set records a property.
func (r *RunInfoRecorder) Set(property, value string) {
	r.entries = append(r.entries, RunInfo{Property: property, Value: value})
}

// End writes all the properties along with the end time.
func (r *RunInfoRecorder) End() {
	r.Set("End Time", timestamp())

	for _, entry := range r.entries {
		r.recorder.InsertData(RunInfoTable, entry)
	}

	r.entries = nil

	r.recorder.Flush()
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000000000")
}

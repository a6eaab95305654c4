package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// RunReport is the machine-readable account of one finished run, written as
// a JSON file for CI systems that want more than the exit code. Each run
// gets a fresh random RunID so that archived reports can be told apart.
type RunReport struct {
	RunID       string            `json:"runId"`
	BaseURL     string            `json:"baseUrl"`
	StartedAt   time.Time         `json:"startedAt"`
	FinishedAt  time.Time         `json:"finishedAt"`
	Attempted   int               `json:"attempted"`
	Succeeded   int               `json:"succeeded"`
	Failed      int               `json:"failed"`
	SuccessRate float64           `json:"successRate"`
	ExitCode    int               `json:"exitCode"`
	Failures    []ReportedFailure `json:"failures,omitempty"`
}

// ReportedFailure is one failing case in a RunReport, in execution order.
// Status is omitted when the request never completed.
type ReportedFailure struct {
	Case       string `json:"case"`
	Critical   bool   `json:"critical,omitempty"`
	URL        string `json:"url"`
	Failure    string `json:"failure"`
	Detail     string `json:"detail,omitempty"`
	Status     *int   `json:"status,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// NewRunReport assembles the report for a finished run.
func NewRunReport(baseURL string, startedAt, finishedAt time.Time, ledger *Ledger) RunReport {
	summary := ledger.Summary()
	report := RunReport{
		RunID:       uuid.NewString(),
		BaseURL:     baseURL,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
		Attempted:   summary.Attempted,
		Succeeded:   summary.Succeeded,
		Failed:      summary.Failed,
		SuccessRate: summary.SuccessRate,
		ExitCode:    ExitCode(ledger),
	}
	for _, failure := range ledger.Failures() {
		entry := ReportedFailure{
			Case:     failure.CaseName,
			Critical: failure.Critical,
			URL:      failure.URL,
			Failure:  string(failure.Failure),
			Detail:   failure.Detail,
		}
		if failure.Status.IsDefined() {
			status := failure.Status.IntValue()
			entry.Status = &status
			entry.Diagnostic = failure.Diagnostic.String()
		}
		report.Failures = append(report.Failures, entry)
	}
	return report
}

// WriteFile writes the report as indented JSON.
func (r RunReport) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal run report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

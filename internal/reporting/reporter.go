// File: internal/reporting/reporter.go

// Package reporting renders session reports to a file or stdout, as
// machine-readable JSON or as the human-readable confidence summary.
package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/AtlazReso87/QPFT/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reporter writes a session report to its destination.
type Reporter interface {
	Write(report *schemas.SessionReport) error
	Close() error
}

// New creates a reporter for the given format ("json" or "text"). An empty
// path writes to stdout and Close leaves stdout open.
func New(format, path string) (Reporter, error) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer
	)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create report file: %w", err)
		}
		w, closer = f, f
	}

	switch format {
	case "json":
		return &jsonReporter{w: w, closer: closer}, nil
	case "text":
		return &textReporter{w: w, closer: closer}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want \"json\" or \"text\")", format)
	}
}

type jsonReporter struct {
	w      io.Writer
	closer io.Closer
}

func (r *jsonReporter) Write(report *schemas.SessionReport) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if _, err := fmt.Fprintln(r.w, string(out)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *jsonReporter) Close() error { return closeQuietly(r.closer) }

type textReporter struct {
	w      io.Writer
	closer io.Closer
}

func (r *textReporter) Write(report *schemas.SessionReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Session %s (%s)\n", report.SessionID, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "\nVisibility\n")
	fmt.Fprintf(&b, "  confidence:       %.3f\n", report.Visibility.Confidence)
	fmt.Fprintf(&b, "  energy gap:       %.3f eV\n", report.Visibility.EnergyGapEV)
	fmt.Fprintf(&b, "\nLocomotion\n")
	fmt.Fprintf(&b, "  tunneling prob.:  %.3g\n", report.Locomotion.TunnelingProbability)
	fmt.Fprintf(&b, "  plausibility:     %.3f\n", report.Locomotion.Plausibility)
	fmt.Fprintf(&b, "\nQuantum interaction\n")
	fmt.Fprintf(&b, "  coherence score:  %.3f\n", report.Quantum.CoherenceScore)

	fmt.Fprintf(&b, "\nAnomaly flags\n")
	for _, flag := range report.AnomalyFlags {
		fmt.Fprintf(&b, "  - %s\n", flag)
	}

	if len(report.Recommendations) == 0 {
		fmt.Fprintf(&b, "\nNo follow-up checks recommended.\n")
	} else {
		fmt.Fprintf(&b, "\nRecommended follow-up checks\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *textReporter) Close() error { return closeQuietly(r.closer) }

func closeQuietly(c io.Closer) error {
	if c == nil {
		return nil
	}
	return c.Close()
}

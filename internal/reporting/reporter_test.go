// File: internal/reporting/reporter_test.go
package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtlazReso87/QPFT/api/schemas"
)

func sampleReport() *schemas.SessionReport {
	return &schemas.SessionReport{
		SessionID:   uuid.MustParse("5b4e0d2c-6f1a-4f5e-9f30-3a1c1f2d4e56"),
		GeneratedAt: time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
		Visibility:  schemas.VisibilityResult{Confidence: 0.92, EnergyGapEV: 2.256},
		Locomotion:  schemas.LocomotionResult{TunnelingProbability: 1.0, Plausibility: 0.8},
		Quantum:     schemas.QuantumResult{CoherenceScore: 0.17},
		AnomalyFlags: []string{
			"temperature drop confirmed: thermal coupling within passive-exchange limits",
			"trajectory shift within range",
		},
		Recommendations: []string{
			"re-test the correlation pair inside the 0.15 m coherence envelope",
		},
	}
}

func TestJSONReporterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	r, err := New("json", path)
	require.NoError(t, err)
	require.NoError(t, r.Write(sampleReport()))
	require.NoError(t, r.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded schemas.SessionReport
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *sampleReport(), decoded)
}

func TestTextReporterContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	r, err := New("text", path)
	require.NoError(t, err)
	require.NoError(t, r.Write(sampleReport()))
	require.NoError(t, r.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "confidence:       0.920")
	assert.Contains(t, out, "energy gap:       2.256 eV")
	assert.Contains(t, out, "coherence score:  0.170")
	assert.Contains(t, out, "trajectory shift within range")
	assert.Contains(t, out, "coherence envelope")
}

func TestTextReporterNoRecommendations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	rep := sampleReport()
	rep.Recommendations = nil

	r, err := New("text", path)
	require.NoError(t, err)
	require.NoError(t, r.Write(rep))
	require.NoError(t, r.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "No follow-up checks recommended.")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("xml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestStdoutReporterCloseIsSafe(t *testing.T) {
	r, err := New("json", "")
	require.NoError(t, err)
	assert.NoError(t, r.Close(), "closing a stdout reporter must not close stdout")
}

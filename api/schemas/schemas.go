// File: api/schemas/schemas.go

// Package schemas defines the shared data contracts passed between the
// analyzer core, the CLI commands, and the reporting layer.
package schemas

import (
	"time"

	"github.com/google/uuid"
)

// Observation is one set of field measurements supplied to an analysis
// session. All fields are raw instrument readings; nothing is validated
// here, validation belongs to the analyzer's parameter record.
type Observation struct {
	// Visibility event inputs.
	EvidenceQuality float64 `json:"evidence_quality"` // nominally [0,1], not enforced
	RFCorrelation   float64 `json:"rf_correlation"`

	// Locomotion event inputs.
	Displacement   float64 `json:"displacement"`    // m
	DeltaTime      float64 `json:"delta_time"`      // s
	DeviationAngle float64 `json:"deviation_angle"` // degrees

	// Quantum interaction inputs.
	Correlation float64 `json:"correlation"`
	Distance    float64 `json:"distance"` // m

	// Environmental deltas for the anomaly checks.
	DeltaTemp       float64 `json:"delta_temp"`       // degrees C
	TrajectoryShift float64 `json:"trajectory_shift"` // degrees
	DeltaPulsation  float64 `json:"delta_pulsation"`  // Hz
}

// VisibilityResult carries the visibility confidence and the photon energy
// gap implied by the configured wavelength.
type VisibilityResult struct {
	Confidence  float64 `json:"confidence"`
	EnergyGapEV float64 `json:"energy_gap_ev"`
}

// LocomotionResult carries the tunneling probability estimate and the
// combined timing/trajectory plausibility score.
type LocomotionResult struct {
	TunnelingProbability float64 `json:"tunneling_probability"`
	Plausibility         float64 `json:"plausibility"`
}

// QuantumResult carries the distance-decayed correlation score.
type QuantumResult struct {
	CoherenceScore float64 `json:"coherence_score"`
}

// ParameterSnapshot records the analyzer parameters a report was produced
// under, so sessions stay comparable after retuning.
type ParameterSnapshot struct {
	VisibilityWavelength   float64   `json:"visibility_wavelength"`
	InvisibilityWavelength float64   `json:"invisibility_wavelength"`
	AmbientRFRange         []float64 `json:"ambient_rf_range"`
	Mass                   float64   `json:"mass"`
	BarrierHeight          float64   `json:"barrier_height"`
	CoherenceLength        float64   `json:"coherence_length"`
	ConfidenceWeights      []float64 `json:"confidence_weights"`
}

// SessionReport is the envelope for one full analysis pass over a single
// observation.
type SessionReport struct {
	SessionID       uuid.UUID         `json:"session_id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Observation     Observation       `json:"observation"`
	Parameters      ParameterSnapshot `json:"parameters"`
	Visibility      VisibilityResult  `json:"visibility"`
	Locomotion      LocomotionResult  `json:"locomotion"`
	Quantum         QuantumResult     `json:"quantum"`
	AnomalyFlags    []string          `json:"anomaly_flags"`
	Recommendations []string          `json:"recommendations"`
}

// File: internal/analyzer/analysis.go
package analyzer

import (
	"fmt"
	"math"
)

// The five analysis operations below are pure with respect to the
// analyzer: they read the current parameter record and the call-supplied
// observation, mutate nothing, and may run in any order.
//
// Confidence scores are clamped above at 1.0 but deliberately never below
// zero; a negative confidence is a meaningful "worse than no evidence"
// signal and must propagate unchanged.

// AnalyzeVisibility scores a visibility event from the quality of the
// captured evidence and its correlation with ambient RF activity. It also
// reports the photon energy gap implied by the configured visibility
// wavelength, in eV.
func (a *Analyzer) AnalyzeVisibility(evidenceQuality, rfCorrelation float64) (confidence, energyGapEV float64) {
	energyGapEV = planckConstant * lightSpeed / a.params.VisibilityWavelength * evPerJoule
	confidence = math.Min(1, 0.9*evidenceQuality+0.15*rfCorrelation)
	return confidence, energyGapEV
}

// AnalyzeLocomotion estimates how plausibly a reported displacement could
// be a barrier-crossing event. The tunneling probability treats the
// configured mass (converted to eV via mass-energy equivalence) against
// the configured barrier height; the plausibility score combines a timing
// consistency factor with a penalty for trajectory deviation.
func (a *Analyzer) AnalyzeLocomotion(displacement, deltaTime, deviationAngleDeg float64) (tunnelingProbability, plausibility float64) {
	massEV := a.params.Mass * lightSpeed * lightSpeed * evPerJoule
	tunnelingProbability = math.Exp(-2 * displacement * math.Sqrt(2*massEV*a.params.BarrierHeight) / reducedPlanck)

	anglePenalty := math.Max(0, 1-deviationAngleDeg/deviationAngleScale)
	timeConsistency := 0.5
	if deltaTime < 0.5 {
		timeConsistency = 0.8
	}
	return tunnelingProbability, timeConsistency * anglePenalty
}

// AnalyzeQuantumInteraction scores a correlation signal, decayed linearly
// with distance up to the configured coherence length. Beyond the
// coherence length the signal is treated as fully decayed and the score
// is zero regardless of correlation strength.
func (a *Analyzer) AnalyzeQuantumInteraction(correlation, distance float64) float64 {
	distanceRatio := math.Min(1, distance/a.params.CoherenceLength)
	coherencePenalty := 1 - distanceRatio
	correlationStrength := math.Min(1, math.Abs(correlation))
	return correlationStrength * coherencePenalty
}

// CheckAnomalies runs three independent threshold checks over a set of
// environmental deltas and returns the resulting flags in a fixed order.
// The pulsation check has no negative counterpart: the absence of its
// advisory is itself the all-clear.
func (a *Analyzer) CheckAnomalies(deltaTemp, trajectoryShift, deltaPulsation float64) []string {
	flags := make([]string, 0, 3)

	if deltaTemp < thermalLimit {
		flags = append(flags, "temperature drop confirmed: thermal coupling within passive-exchange limits")
	} else {
		flags = append(flags, "thermodynamic violation: temperature delta exceeds passive-exchange limit")
	}

	if trajectoryShift < trajectoryShiftLimit {
		flags = append(flags, "trajectory shift within range")
	} else {
		flags = append(flags, "trajectory shift excessive: sensor alignment needs adjustment")
	}

	if deltaPulsation > pulsationAdvisory {
		flags = append(flags, fmt.Sprintf("pulsation variance %.2f Hz above advisory threshold: schedule a resonance re-scan", deltaPulsation))
	}

	return flags
}

// SuggestValidation maps the three analysis confidences onto recommended
// follow-up checks. Each confidence below its cutoff contributes one
// recommendation interpolating the relevant configured parameter; a fully
// confident session yields an empty slice.
func (a *Analyzer) SuggestValidation(visibilityConf, locomotionConf, quantumConf float64) []string {
	recs := make([]string, 0, 3)

	if visibilityConf < visibilityCutoff {
		recs = append(recs, fmt.Sprintf("repeat the visibility capture at %.0f nm with a higher-grade optical train", a.params.VisibilityWavelength*1e9))
	}
	if locomotionConf < locomotionCutoff {
		recs = append(recs, "re-measure displacement with synchronized clocks before re-running the barrier model")
	}
	if quantumConf < quantumCutoff {
		recs = append(recs, fmt.Sprintf("re-test the correlation pair inside the %.2f m coherence envelope", a.params.CoherenceLength))
	}

	return recs
}

// File: internal/analyzer/constants.go
package analyzer

// Physical constants used by the analysis formulas. These are the same
// approximate values earlier field builds shipped with; substituting
// higher-precision CODATA values would shift published confidence numbers
// and break comparability between sessions, so they stay as-is.
const (
	planckConstant = 6.626e-34 // J*s
	reducedPlanck  = 1.055e-34 // J*s
	lightSpeed     = 3.0e8     // m/s
	evPerJoule     = 6.242e18  // eV per joule
)

// Confidence cutoffs below which a follow-up validation step is suggested.
const (
	visibilityCutoff = 0.85
	locomotionCutoff = 0.75
	quantumCutoff    = 0.80
)

// Anomaly check thresholds.
const (
	thermalLimit         = 0.5  // degrees C; larger drops violate passive exchange
	trajectoryShiftLimit = 5.0  // degrees
	pulsationAdvisory    = 0.2  // Hz; variance above this earns an advisory
	deviationAngleScale  = 15.0 // degrees; full penalty at and beyond this angle
)

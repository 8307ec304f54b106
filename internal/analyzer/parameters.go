// File: internal/analyzer/parameters.go
package analyzer

// Canonical parameter names accepted by UpdateParameter and SetUnchecked.
const (
	ParamVisibilityWavelength   = "visibility_wavelength"
	ParamInvisibilityWavelength = "invisibility_wavelength"
	ParamAmbientRFRange         = "ambient_rf_range"
	ParamMass                   = "mass"
	ParamBarrierHeight          = "barrier_height"
	ParamCoherenceLength        = "coherence_length"
	ParamConfidenceWeights      = "confidence_weights"
)

// Bound is the closed interval a range-checked parameter must stay inside.
type Bound struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the closed interval.
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// paramBounds lists the three range-checked parameters. Every other name,
// known or not, is accepted unconditionally.
var paramBounds = map[string]Bound{
	ParamMass:            {Min: 1e-31, Max: 1e-25},
	ParamBarrierHeight:   {Min: 0.1, Max: 10.0},
	ParamCoherenceLength: {Min: 0.01, Max: 1.0},
}

// BoundFor returns the declared bound for a parameter name, if the
// parameter is one of the range-checked ones.
func BoundFor(name string) (Bound, bool) {
	b, ok := paramBounds[name]
	return b, ok
}

// Parameters is the analyzer's typed configuration record.
//
// The invisibility wavelength, ambient RF range and confidence weights are
// stored and settable but are not read by any analysis operation. They are
// kept as inert fields on purpose rather than dropped or given invented
// semantics.
type Parameters struct {
	VisibilityWavelength   float64   `json:"visibility_wavelength"`   // m
	InvisibilityWavelength float64   `json:"invisibility_wavelength"` // m, inert
	AmbientRFRange         []float64 `json:"ambient_rf_range"`        // Hz pair, inert
	Mass                   float64   `json:"mass"`                    // kg, bounded
	BarrierHeight          float64   `json:"barrier_height"`          // eV, bounded
	CoherenceLength        float64   `json:"coherence_length"`        // m, bounded
	ConfidenceWeights      []float64 `json:"confidence_weights"`      // inert
}

// DefaultParameters returns the stock parameter set a fresh analyzer
// starts from.
func DefaultParameters() Parameters {
	return Parameters{
		VisibilityWavelength:   550e-9,
		InvisibilityWavelength: 750e-9,
		AmbientRFRange:         []float64{50e6, 900e6},
		Mass:                   9.109e-31,
		BarrierHeight:          1.2,
		CoherenceLength:        0.15,
		ConfidenceWeights:      []float64{0.5, 0.3, 0.2},
	}
}

// clone deep-copies the record so callers cannot alias the analyzer's
// internal slices.
func (p Parameters) clone() Parameters {
	out := p
	if p.AmbientRFRange != nil {
		out.AmbientRFRange = append([]float64(nil), p.AmbientRFRange...)
	}
	if p.ConfidenceWeights != nil {
		out.ConfidenceWeights = append([]float64(nil), p.ConfidenceWeights...)
	}
	return out
}

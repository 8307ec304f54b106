// File: internal/analyzer/analyzer.go

// Package analyzer implements the field-observation calculator at the core
// of qpft: a validated parameter record plus a set of pure, closed-form
// analysis operations over caller-supplied observations.
package analyzer

import (
	"fmt"

	"go.uber.org/zap"
)

// EvolutionEntry is one record of the append-only evolution log.
type EvolutionEntry struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
}

// Analyzer holds the mutable parameter record, an open side table for
// arbitrary extra keys, and the evolution log. It is an explicitly
// constructed, explicitly passed value; there is no package-level instance.
//
// The analyzer assumes a single caller. The two mutating methods
// (UpdateParameter, SetUnchecked, LogEvolution) need external
// synchronization if the value is ever shared across goroutines; the
// analysis operations only read.
type Analyzer struct {
	params Parameters
	// extras holds parameters outside the known record. Values land here
	// unvalidated and untyped; no analysis operation reads them.
	extras map[string]any
	log    []EvolutionEntry
	logger *zap.Logger
}

// New constructs an analyzer seeded with the given parameters and the
// initial evolution-log entry.
func New(params Parameters, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		params: params.clone(),
		extras: make(map[string]any),
		log: []EvolutionEntry{{
			Version:     "0.1.0",
			Description: "initial parameter set",
			Trigger:     "analyzer construction",
		}},
		logger: logger,
	}
}

// UpdateParameter stores a new value for the named parameter.
//
// The three range-checked parameters (mass, barrier_height,
// coherence_length) must be numeric and inside their declared closed
// interval; a violation returns a *ValidationError and leaves the stored
// value untouched. Every other name, known or unknown, is stored
// unconditionally with no error path.
func (a *Analyzer) UpdateParameter(name string, value any) (string, error) {
	if bound, checked := paramBounds[name]; checked {
		v, ok := asFloat(value)
		if !ok {
			return "", &ValidationError{Name: name, Bound: bound}
		}
		if !bound.Contains(v) {
			return "", &ValidationError{Name: name, Value: v, Bound: bound}
		}
		a.store(name, v)
		a.logger.Debug("parameter updated", zap.String("name", name), zap.Float64("value", v))
		return fmt.Sprintf("parameter %s updated to %g", name, v), nil
	}

	a.store(name, value)
	a.logger.Debug("parameter stored", zap.String("name", name), zap.Any("value", value))
	return fmt.Sprintf("parameter %s updated to %v", name, value), nil
}

// SetUnchecked writes any parameter, range-checked ones included, with no
// validation at all. This bypass is intentional and load-bearing: field
// crews occasionally need to push a sensor reading outside the published
// envelope to reproduce an anomaly. Values set through here may leave the
// record outside its documented invariants.
func (a *Analyzer) SetUnchecked(name string, value any) {
	a.store(name, value)
	a.logger.Debug("parameter set unchecked", zap.String("name", name), zap.Any("value", value))
}

// Parameter returns the current value of a parameter by name and whether
// it is set. Known record fields are returned typed; side-table entries
// come back as stored.
func (a *Analyzer) Parameter(name string) (any, bool) {
	switch name {
	case ParamVisibilityWavelength:
		return a.params.VisibilityWavelength, true
	case ParamInvisibilityWavelength:
		return a.params.InvisibilityWavelength, true
	case ParamAmbientRFRange:
		return a.params.AmbientRFRange, true
	case ParamMass:
		return a.params.Mass, true
	case ParamBarrierHeight:
		return a.params.BarrierHeight, true
	case ParamCoherenceLength:
		return a.params.CoherenceLength, true
	case ParamConfidenceWeights:
		return a.params.ConfidenceWeights, true
	}
	v, ok := a.extras[name]
	return v, ok
}

// Parameters returns a copy of the current typed record.
func (a *Analyzer) Parameters() Parameters {
	return a.params.clone()
}

// Extras returns the side table of unknown parameters. The map is the
// analyzer's own; callers must treat it as read-only.
func (a *Analyzer) Extras() map[string]any {
	return a.extras
}

// LogEvolution appends a new entry to the evolution log. Entries are never
// validated, ordered, or deduplicated; the log is a plain append-only
// record of what changed and why.
func (a *Analyzer) LogEvolution(version, description, trigger string) string {
	a.log = append(a.log, EvolutionEntry{
		Version:     version,
		Description: description,
		Trigger:     trigger,
	})
	a.logger.Info("evolution recorded",
		zap.String("version", version),
		zap.String("trigger", trigger))
	return fmt.Sprintf("evolution %s recorded: %s (trigger: %s)", version, description, trigger)
}

// EvolutionLog returns a copy of the log in insertion order.
func (a *Analyzer) EvolutionLog() []EvolutionEntry {
	return append([]EvolutionEntry(nil), a.log...)
}

// store routes a value to the typed record when the name and type match a
// known field, and to the side table otherwise.
func (a *Analyzer) store(name string, value any) {
	switch name {
	case ParamVisibilityWavelength:
		if v, ok := asFloat(value); ok {
			a.params.VisibilityWavelength = v
			return
		}
	case ParamInvisibilityWavelength:
		if v, ok := asFloat(value); ok {
			a.params.InvisibilityWavelength = v
			return
		}
	case ParamMass:
		if v, ok := asFloat(value); ok {
			a.params.Mass = v
			return
		}
	case ParamBarrierHeight:
		if v, ok := asFloat(value); ok {
			a.params.BarrierHeight = v
			return
		}
	case ParamCoherenceLength:
		if v, ok := asFloat(value); ok {
			a.params.CoherenceLength = v
			return
		}
	case ParamAmbientRFRange:
		if v, ok := value.([]float64); ok {
			a.params.AmbientRFRange = append([]float64(nil), v...)
			return
		}
	case ParamConfidenceWeights:
		if v, ok := value.([]float64); ok {
			a.params.ConfidenceWeights = append([]float64(nil), v...)
			return
		}
	}
	a.extras[name] = value
}

// asFloat widens the numeric types a CLI or config layer plausibly hands us.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// File: cmd/analyze.go
package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AtlazReso87/QPFT/api/schemas"
	"github.com/AtlazReso87/QPFT/internal/analyzer"
	"github.com/AtlazReso87/QPFT/internal/config"
	"github.com/AtlazReso87/QPFT/internal/observability"
	"github.com/AtlazReso87/QPFT/internal/reporting"
)

// newAnalyzeCmd creates the 'analyze' command. It collects one observation
// from flags, runs the full analysis pass, and writes a session report.
func newAnalyzeCmd() *cobra.Command {
	var obs schemas.Observation
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis pass over one observation",
		Long: `Applies all five analyses (visibility, locomotion, quantum interaction,
anomaly checks, validation suggestions) to the observation supplied via
flags and writes a session report to stdout or --output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Report.Format
			}
			if output == "" {
				output = cfg.Report.Output
			}

			// Delegate to a separate, testable function.
			return runAnalyze(logger, cfg, obs, format, output)
		},
	}

	cmd.Flags().Float64Var(&obs.EvidenceQuality, "evidence-quality", 0, "quality of captured visibility evidence (nominally 0..1)")
	cmd.Flags().Float64Var(&obs.RFCorrelation, "rf-correlation", 0, "correlation of the event with ambient RF activity")
	cmd.Flags().Float64Var(&obs.Displacement, "displacement", 0, "reported displacement in meters")
	cmd.Flags().Float64Var(&obs.DeltaTime, "delta-time", 0, "elapsed time of the displacement in seconds")
	cmd.Flags().Float64Var(&obs.DeviationAngle, "deviation-angle", 0, "trajectory deviation angle in degrees")
	cmd.Flags().Float64Var(&obs.Correlation, "correlation", 0, "measured correlation coefficient")
	cmd.Flags().Float64Var(&obs.Distance, "distance", 0, "separation of the correlated pair in meters")
	cmd.Flags().Float64Var(&obs.DeltaTemp, "delta-temp", 0, "temperature delta in degrees C")
	cmd.Flags().Float64Var(&obs.TrajectoryShift, "trajectory-shift", 0, "trajectory shift in degrees")
	cmd.Flags().Float64Var(&obs.DeltaPulsation, "delta-pulsation", 0, "pulsation variance in Hz")
	cmd.Flags().StringVarP(&format, "format", "f", "", "report format: 'text' or 'json' (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "report file path; empty prints to stdout")

	return cmd
}

// runAnalyze contains the core application logic for the analysis pass. It
// is decoupled from cobra and accepts all dependencies as arguments.
func runAnalyze(logger *zap.Logger, cfg *config.Config, obs schemas.Observation, format, output string) error {
	a := analyzer.New(cfg.Analyzer.Parameters(), logger)
	report := buildReport(a, obs)

	logger.Info("Analysis complete",
		zap.String("session_id", report.SessionID.String()),
		zap.Float64("visibility_confidence", report.Visibility.Confidence),
		zap.Float64("plausibility", report.Locomotion.Plausibility),
		zap.Float64("coherence_score", report.Quantum.CoherenceScore),
		zap.Int("anomaly_flags", len(report.AnomalyFlags)),
		zap.Int("recommendations", len(report.Recommendations)))

	reporter, err := reporting.New(format, output)
	if err != nil {
		return fmt.Errorf("failed to initialize reporter: %w", err)
	}
	defer func() {
		if err := reporter.Close(); err != nil {
			logger.Warn("Failed to close reporter cleanly.", zap.Error(err))
		}
	}()

	if err := reporter.Write(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if output != "" {
		logger.Info("Report written", zap.String("path", output), zap.String("format", format))
	}
	return nil
}

// buildReport runs the five analyses in sequence and assembles the session
// envelope. The operations are independent; the sequence only fixes the
// report layout.
func buildReport(a *analyzer.Analyzer, obs schemas.Observation) *schemas.SessionReport {
	visConfidence, energyGap := a.AnalyzeVisibility(obs.EvidenceQuality, obs.RFCorrelation)
	tunneling, plausibility := a.AnalyzeLocomotion(obs.Displacement, obs.DeltaTime, obs.DeviationAngle)
	coherenceScore := a.AnalyzeQuantumInteraction(obs.Correlation, obs.Distance)
	flags := a.CheckAnomalies(obs.DeltaTemp, obs.TrajectoryShift, obs.DeltaPulsation)
	recommendations := a.SuggestValidation(visConfidence, plausibility, coherenceScore)

	params := a.Parameters()
	return &schemas.SessionReport{
		SessionID:   uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Observation: obs,
		Parameters: schemas.ParameterSnapshot{
			VisibilityWavelength:   params.VisibilityWavelength,
			InvisibilityWavelength: params.InvisibilityWavelength,
			AmbientRFRange:         params.AmbientRFRange,
			Mass:                   params.Mass,
			BarrierHeight:          params.BarrierHeight,
			CoherenceLength:        params.CoherenceLength,
			ConfidenceWeights:      params.ConfidenceWeights,
		},
		Visibility:      schemas.VisibilityResult{Confidence: visConfidence, EnergyGapEV: energyGap},
		Locomotion:      schemas.LocomotionResult{TunnelingProbability: tunneling, Plausibility: plausibility},
		Quantum:         schemas.QuantumResult{CoherenceScore: coherenceScore},
		AnomalyFlags:    flags,
		Recommendations: recommendations,
	}
}

// File: cmd/evolution_test.go
package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AtlazReso87/QPFT/internal/analyzer"
)

func TestRunEvolution(t *testing.T) {
	a := analyzer.New(analyzer.DefaultParameters(), zap.NewNop())

	var buf bytes.Buffer
	err := runEvolution(&buf, a, "0.2.0", "raised barrier height after site survey", "field report 114")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "evolution 0.2.0 recorded")
	assert.Contains(t, out, "evolution log:")
	assert.Contains(t, out, "1. 0.1.0", "seed entry prints first")
	assert.Contains(t, out, "2. 0.2.0: raised barrier height after site survey (trigger: field report 114)")

	require.Len(t, a.EvolutionLog(), 2)
}

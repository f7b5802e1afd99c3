package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLocationString verifies the "file:line:col" rendering consumed by
// diagnostic printing.
func TestLocationString(t *testing.T) {
	loc := Location{File: "demo.vsl", Line: 4, Col: 12}
	require.Equal(t, "demo.vsl:4:12", loc.String())
}

// TestSinkAccumulatesInReportOrder checks §8 property 8 (error
// accumulation): every recorded error survives, in the order reported.
func TestSinkAccumulatesInReportOrder(t *testing.T) {
	s := NewSink()
	require.False(t, s.Invalid())

	s.Error("first error", Location{File: "a", Line: 1, Col: 1})
	s.Error("second error", Location{File: "a", Line: 2, Col: 1})
	s.Error("third error", Location{File: "a", Line: 3, Col: 1})

	require.True(t, s.Invalid())
	got := s.Diagnostics()
	require.Len(t, got, 3)
	require.Equal(t, "first error", got[0].Msg)
	require.Equal(t, "second error", got[1].Msg)
	require.Equal(t, "third error", got[2].Msg)
}

// TestSemanticErrorMessage checks the terminal failure's message is exactly
// the one the Driver raises at end of gencode (§7).
func TestSemanticErrorMessage(t *testing.T) {
	err := NewSemanticError("Errors occurred")
	require.EqualError(t, err, "Errors occurred")
}

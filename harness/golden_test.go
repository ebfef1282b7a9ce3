package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_InOrder(t *testing.T) {
	want := testSystem{A: "a2", B: "b1"}
	scenario := &Scenario[testSystem, testEvent]{
		Name:        "overwrite_in_order",
		Description: "later writes win; the trace shows queue order",
		Events:      []testEvent{set("a", "a1"), set("b", "b1"), set("a", "a2")},
		Want:        &want,
	}

	report := RunWithGolden(t, scenario, applyEvent)
	require.True(t, report.Pass)
}

func TestRunFallibleWithGolden_Halt(t *testing.T) {
	scenario := &Scenario[testSystem, testEvent]{
		Name:        "halts_on_c",
		Description: "the halting error and truncated trace are part of the snapshot",
		Events:      []testEvent{set("a", "x"), set("b", "y"), set("c", "z"), set("a", "w")},
	}

	report := RunFallibleWithGolden(t, scenario, applyEventFallible)
	require.False(t, report.Pass)
}

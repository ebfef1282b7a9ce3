package eventual

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_OK(t *testing.T) {
	result := OK(systemUnderTest{A: "a1"})

	system, err := result.Get()
	require.NoError(t, err)
	assert.Equal(t, "a1", system.A)
	assert.NoError(t, result.Err())
	assert.Equal(t, "a1", result.Must().A)
}

func TestResult_Fail(t *testing.T) {
	boom := errors.New("boom")
	result := Fail[systemUnderTest](boom)

	system, err := result.Get()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, systemUnderTest{}, system)
	assert.ErrorIs(t, result.Err(), boom)
}

func TestResult_MustPanicsOnFailure(t *testing.T) {
	result := Fail[systemUnderTest](errors.New("boom"))
	assert.PanicsWithValue(t, "eventual: resolution failed: boom", func() {
		result.Must()
	})
}

func TestResult_ZeroValueIsSuccess(t *testing.T) {
	var result Result[systemUnderTest]
	require.NoError(t, result.Err())
	assert.Equal(t, systemUnderTest{}, result.Must())
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvStringSlice(t *testing.T) {
	defaults := []string{"09:00", "10:00"}

	t.Run("Unset Variable Uses Default", func(t *testing.T) {
		assert.Equal(t, defaults, GetEnvStringSlice("BCLNC_TEST_UNSET_SLICE", defaults))
	})

	t.Run("Values Are Trimmed", func(t *testing.T) {
		t.Setenv("BCLNC_TEST_SLICE", " cancelled , no-show ")
		assert.Equal(t, []string{"cancelled", "no-show"}, GetEnvStringSlice("BCLNC_TEST_SLICE", defaults))
	})

	t.Run("Blank Variable Yields Empty Slice", func(t *testing.T) {
		t.Setenv("BCLNC_TEST_SLICE", "")
		assert.Empty(t, GetEnvStringSlice("BCLNC_TEST_SLICE", defaults))
	})
}

func TestGetEnvIntFallsBackOnParseError(t *testing.T) {
	t.Setenv("BCLNC_TEST_INT", "three")
	assert.Equal(t, 3, GetEnvInt("BCLNC_TEST_INT", 3))

	t.Setenv("BCLNC_TEST_INT", "5")
	assert.Equal(t, 5, GetEnvInt("BCLNC_TEST_INT", 3))
}

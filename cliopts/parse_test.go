package cliopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrenders/circumference6/cliopts"
)

func TestDefaultIsCircumference(t *testing.T) {
	cfg, err := cliopts.Parse(nil)
	assert.NoError(t, err)
	assert.Equal(t, cliopts.MeasureCircumference, cfg.Measure)
	assert.Nil(t, cfg.Forbidden)
	assert.Nil(t, cfg.Output)
}

func TestMeasureSelectors(t *testing.T) {
	cfg, err := cliopts.Parse([]string{"-c"})
	assert.NoError(t, err)
	assert.Equal(t, cliopts.MeasureInducedCycle, cfg.Measure)

	cfg, err = cliopts.Parse([]string{"-p"})
	assert.NoError(t, err)
	assert.Equal(t, cliopts.MeasureInducedPath, cfg.Measure)

	cfg, err = cliopts.Parse([]string{"-l"})
	assert.NoError(t, err)
	assert.Equal(t, cliopts.MeasurePath, cfg.Measure)
}

func TestCycleAndPathAreMutuallyExclusive(t *testing.T) {
	_, err := cliopts.Parse([]string{"-c", "-p"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)
}

func TestCycleWithLengthIsUsageError(t *testing.T) {
	_, err := cliopts.Parse([]string{"-c", "-l"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)
}

func TestForbiddenRequiresCycleOrPath(t *testing.T) {
	_, err := cliopts.Parse([]string{"-f", "5"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)

	cfg, err := cliopts.Parse([]string{"-c", "-f", "5"})
	assert.NoError(t, err)
	assert.NotNil(t, cfg.Forbidden)
	assert.Equal(t, 5, *cfg.Forbidden)
}

func TestForbiddenAndOutputAreIncompatible(t *testing.T) {
	_, err := cliopts.Parse([]string{"-c", "-f", "5", "-o", "3"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)
}

func TestDifferenceAndForbiddenAreIncompatible(t *testing.T) {
	_, err := cliopts.Parse([]string{"-c", "-d", "-f", "5"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)

	_, err = cliopts.Parse([]string{"-p", "-d", "-f", "3"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)
}

func TestOutputAndDifference(t *testing.T) {
	cfg, err := cliopts.Parse([]string{"-d", "-o", "2"})
	assert.NoError(t, err)
	assert.True(t, cfg.Difference)
	assert.Equal(t, 2, *cfg.Output)
}

func TestComplementFlag(t *testing.T) {
	cfg, err := cliopts.Parse([]string{"-C"})
	assert.NoError(t, err)
	assert.True(t, cfg.Complement)
}

func TestUnknownFlag(t *testing.T) {
	_, err := cliopts.Parse([]string{"--bogus"})
	assert.ErrorIs(t, err, cliopts.ErrUsage)
}

func TestHelpFlag(t *testing.T) {
	_, err := cliopts.Parse([]string{"-h"})
	assert.ErrorIs(t, err, cliopts.ErrHelp)
}

func TestUsageIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, cliopts.Usage())
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	r, err := NewDefault()
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 8)

	for _, s := range all {
		assert.Greater(t, s.DefaultTPPct, s.DefaultSLPct, "strategy %s", s.ScanType)
		assert.Greater(t, s.DefaultSLPct, 0.0, "strategy %s", s.ScanType)
		assert.Greater(t, s.MaxHoldDays, 0, "strategy %s", s.ScanType)
	}
}

func TestGet(t *testing.T) {
	r := MustDefault()

	s, err := r.Get(ScanTypeGapScanner)
	require.NoError(t, err)
	assert.Equal(t, 0.05, s.DefaultTPPct)
	assert.Equal(t, 0.02, s.DefaultSLPct)

	_, err = r.Get(ScanType("moon_phase"))
	assert.Error(t, err)
}

func TestNewRejectsInvalidCatalog(t *testing.T) {
	_, err := New([]Strategy{
		{ScanType: ScanTypeGapScanner, Name: "bad", DefaultTPPct: 0.02, DefaultSLPct: 0.05, MaxHoldDays: 2},
	})
	assert.Error(t, err)

	_, err = New([]Strategy{
		{ScanType: ScanTypeGapScanner, Name: "a", DefaultTPPct: 0.05, DefaultSLPct: 0.02, MaxHoldDays: 2},
		{ScanType: ScanTypeGapScanner, Name: "b", DefaultTPPct: 0.05, DefaultSLPct: 0.02, MaxHoldDays: 2},
	})
	assert.Error(t, err)

	_, err = New([]Strategy{
		{ScanType: ScanTypeReversal, Name: "no stop", DefaultTPPct: 0.05, DefaultSLPct: 0, MaxHoldDays: 2},
	})
	assert.Error(t, err)
}

package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFresh(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := Capture([]string{"HQ", "KLCC"}, base)

	require.True(t, v.Fresh(base, time.Minute))
	require.True(t, v.Fresh(base.Add(59*time.Second), time.Minute))
	require.False(t, v.Fresh(base.Add(time.Minute), time.Minute))
	require.False(t, v.Fresh(base.Add(time.Hour), time.Minute))
}

func TestZeroValueNeverFresh(t *testing.T) {
	var v Value[int]
	require.False(t, v.Fresh(time.Now(), 24*time.Hour))
}

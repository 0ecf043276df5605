package statemachine

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
)

type light string

const (
	red    light = "red"
	green  light = "green"
	yellow light = "yellow"
	off    light = "off"
)

func newLight() *Machine[light] {
	return New("light", map[light][]light{
		red:    {green, off},
		green:  {yellow, off},
		yellow: {red},
	})
}

func TestCheck(t *testing.T) {
	m := newLight()
	require.NoError(t, m.Check(red, green))
	require.NoError(t, m.Check(green, off))

	err := m.Check(red, yellow)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, "transition not permitted: from red to yellow")

	require.Error(t, m.Check(off, red))
	require.Error(t, m.Check(red, red))
}

func TestTransitionCountsAcceptedOnly(t *testing.T) {
	metrics.Init()
	m := newLight()
	accepted := metrics.TransitionCounter("light", "yellow", "red")
	before := testutil.ToFloat64(accepted)

	require.NoError(t, m.Transition(yellow, red))
	require.Error(t, m.Transition(yellow, green))

	require.Equal(t, before+1, testutil.ToFloat64(accepted))
	require.Equal(t, float64(0), testutil.ToFloat64(metrics.TransitionCounter("light", "yellow", "green")))
}

func TestTerminalAndNext(t *testing.T) {
	m := newLight()
	require.True(t, m.Terminal(off))
	require.False(t, m.Terminal(red))
	require.ElementsMatch(t, []light{green, off}, m.Next(red))
}

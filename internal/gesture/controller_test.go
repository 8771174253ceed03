package gesture

import (
	"errors"
	"math"
	"testing"

	"lumictl/internal/lighting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureDispatcher struct {
	requests []lighting.Request
}

func (c *captureDispatcher) Dispatch(req lighting.Request) {
	c.requests = append(c.requests, req)
}

func TestDragRedThenReleaseSendsOneWrite(t *testing.T) {
	d := &captureDispatcher{}
	gc := New("light1", d)

	for _, v := range []float64{0, 0.3, 0.7, 1.0} {
		require.NoError(t, gc.OnChannelMove(lighting.ChannelR, v))
	}
	assert.Empty(t, d.requests, "moves must not reach the rig")

	gc.OnGestureComplete()

	require.Len(t, d.requests, 1)
	assert.Equal(t, lighting.SetLightColorRequest("light1", lighting.Color{R: 1.0}), d.requests[0])
}

func TestGestureCarriesLastValuePerChannel(t *testing.T) {
	d := &captureDispatcher{}
	gc := New(lighting.LightLeft, d)

	moves := []struct {
		ch lighting.Channel
		v  float64
	}{
		{lighting.ChannelR, 0.1},
		{lighting.ChannelG, 0.2},
		{lighting.ChannelB, 0.3},
		{lighting.ChannelG, 0.9},
		{lighting.ChannelR, 0.4},
	}
	for _, m := range moves {
		require.NoError(t, gc.OnChannelMove(m.ch, m.v))
	}
	gc.OnGestureComplete()

	require.Len(t, d.requests, 1)
	assert.Equal(t, lighting.Color{R: 0.4, G: 0.9, B: 0.3}, d.requests[0].Color)
	assert.Equal(t, lighting.LightLeft, d.requests[0].Light)
}

func TestInvalidValuesAreRejected(t *testing.T) {
	gc := New(lighting.LightTop, &captureDispatcher{})
	require.NoError(t, gc.OnChannelMove(lighting.ChannelB, 0.5))

	for _, v := range []float64{-0.1, 1.5, math.NaN(), math.Inf(-1)} {
		err := gc.OnChannelMove(lighting.ChannelB, v)
		assert.True(t, errors.Is(err, lighting.ErrInvalidChannelValue), "value %v", v)
		assert.Equal(t, 0.5, gc.Color().B, "prior value retained after %v", v)
	}

	err := gc.OnChannelMove(lighting.Channel(7), 0.5)
	assert.True(t, errors.Is(err, lighting.ErrInvalidChannelValue))
	assert.True(t, gc.Color().Valid())
}

func TestSeedAndDefaults(t *testing.T) {
	gc := New(lighting.LightTop, nil)
	assert.Equal(t, lighting.Black, gc.Color())

	seeded := New(lighting.LightTop, nil, WithSeed(lighting.Color{R: 0.2, G: 0.4, B: 0.6}))
	assert.Equal(t, lighting.Color{R: 0.2, G: 0.4, B: 0.6}, seeded.Color())

	bad := New(lighting.LightTop, nil, WithSeed(lighting.Color{R: 3}))
	assert.Equal(t, lighting.Black, bad.Color())
}

func TestNudgeClamps(t *testing.T) {
	gc := New(lighting.LightTop, nil)
	require.NoError(t, gc.Nudge(lighting.ChannelG, -0.5))
	assert.Equal(t, 0.0, gc.Color().G)
	require.NoError(t, gc.Nudge(lighting.ChannelG, 0.75))
	require.NoError(t, gc.Nudge(lighting.ChannelG, 0.75))
	assert.Equal(t, 1.0, gc.Color().G)
	assert.True(t, gc.Dirty())
}

func TestEachCompletionIsIndependent(t *testing.T) {
	d := &captureDispatcher{}
	gc := New(lighting.LightRight, d)

	require.NoError(t, gc.OnChannelMove(lighting.ChannelR, 0.5))
	gc.OnGestureComplete()
	assert.False(t, gc.Dirty())
	require.NoError(t, gc.OnChannelMove(lighting.ChannelR, 0.6))
	gc.OnGestureComplete()

	require.Len(t, d.requests, 2)
	assert.Equal(t, 0.5, d.requests[0].Color.R)
	assert.Equal(t, 0.6, d.requests[1].Color.R)
}

func TestDetachedControllerIsFrozen(t *testing.T) {
	d := &captureDispatcher{}
	gc := New(lighting.LightBottom, d)
	require.NoError(t, gc.OnChannelMove(lighting.ChannelR, 0.25))

	gc.Detach()
	require.NoError(t, gc.OnChannelMove(lighting.ChannelR, 0.75))
	gc.OnGestureComplete()

	assert.Equal(t, 0.25, gc.Color().R)
	assert.Empty(t, d.requests)
	assert.True(t, gc.Detached())
}

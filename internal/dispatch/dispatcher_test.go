package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lumictl/internal/lighting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	colors   []lighting.Color
	modes    []lighting.ModeName
	ids      []string
	failWith error
	block    chan struct{}
	panicky  bool
}

func (f *fakeAPI) SetLightColor(ctx context.Context, _ lighting.LightID, c lighting.Color) error {
	if f.block != nil {
		<-f.block
	}
	if f.panicky {
		panic("rig exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.colors = append(f.colors, c)
	f.ids = append(f.ids, lighting.RequestIDFrom(ctx))
	return f.failWith
}

func (f *fakeAPI) ActivateMode(ctx context.Context, m lighting.ModeName) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, m)
	f.ids = append(f.ids, lighting.RequestIDFrom(ctx))
	return f.failWith
}

func TestDispatchPublishesResult(t *testing.T) {
	api := &fakeAPI{}
	d := New(api)

	d.Dispatch(lighting.ActivateModeRequest(lighting.ModeRainbow, 7))

	select {
	case res := <-d.Results():
		assert.NoError(t, res.Err)
		assert.Equal(t, uint64(7), res.Request.Generation)
		assert.NotEmpty(t, res.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("no result published")
	}
	d.Close()

	require.Len(t, api.ids, 1)
	assert.NotEmpty(t, api.ids[0], "request id must reach the API through the context")
}

func TestDispatchDoesNotBlockCaller(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	d := New(api)

	done := make(chan struct{})
	go func() {
		d.Dispatch(lighting.SetLightColorRequest(lighting.LightTop, lighting.Color{R: 1}))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on the remote call")
	}
	close(api.block)
	d.Close()
	assert.Len(t, api.colors, 1)
}

func TestFailureIsReportedNotRetried(t *testing.T) {
	api := &fakeAPI{failWith: lighting.ErrRemoteCallFailed}
	d := New(api)

	d.Dispatch(lighting.ActivateModeRequest(lighting.ModeOff, 1))
	d.Wait()

	res := <-d.Results()
	assert.True(t, errors.Is(res.Err, lighting.ErrRemoteCallFailed))
	d.Close()
	assert.Len(t, api.modes, 1)
}

func TestPanicInAPIBecomesError(t *testing.T) {
	d := New(&fakeAPI{panicky: true})

	d.Dispatch(lighting.SetLightColorRequest(lighting.LightLeft, lighting.Color{}))
	d.Wait()

	res := <-d.Results()
	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, lighting.ErrRemoteCallFailed))
	d.Close()
}

func TestFullResultBufferDropsOutcomes(t *testing.T) {
	api := &fakeAPI{}
	d := New(api, WithResultBuffer(1))

	for i := 0; i < 3; i++ {
		d.Dispatch(lighting.ActivateModeRequest(lighting.ModeOff, uint64(i)))
	}
	d.Wait()

	assert.Len(t, api.modes, 3)
	assert.Len(t, d.Results(), 1)
	d.Close()
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	api := &fakeAPI{}
	d := New(api)
	d.Close()
	d.Close()

	d.Dispatch(lighting.ActivateModeRequest(lighting.ModeOff, 1))
	d.Wait()
	assert.Empty(t, api.modes)

	_, open := <-d.Results()
	assert.False(t, open)
}

func TestCloseWaitsForInFlightRequests(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	d := New(api)

	d.Dispatch(lighting.SetLightColorRequest(lighting.LightTop, lighting.Color{R: 1}))

	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()

	require.Eventually(t, func() bool {
		d.mu.RLock()
		defer d.mu.RUnlock()
		return d.closing
	}, time.Second, time.Millisecond)

	// Arrives while Close is waiting and must not start.
	d.Dispatch(lighting.SetLightColorRequest(lighting.LightLeft, lighting.Color{G: 1}))

	select {
	case <-closed:
		t.Fatal("Close returned while a request was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(api.block)
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}

	var results []lighting.Result
	for res := range d.Results() {
		results = append(results, res)
	}
	require.Len(t, results, 1)
	assert.Equal(t, lighting.LightTop, results[0].Request.Light)
	assert.Equal(t, []lighting.Color{{R: 1}}, api.colors)
}

func TestTimeoutReachesAPI(t *testing.T) {
	var deadline time.Time
	api := lighting.RemoteLightAPI(deadlineAPI{out: &deadline})
	d := New(api, WithTimeout(time.Minute))

	d.Dispatch(lighting.ActivateModeRequest(lighting.ModeOff, 1))
	d.Close()

	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 10*time.Second)
}

type deadlineAPI struct{ out *time.Time }

func (a deadlineAPI) SetLightColor(context.Context, lighting.LightID, lighting.Color) error {
	return nil
}

func (a deadlineAPI) ActivateMode(ctx context.Context, _ lighting.ModeName) error {
	*a.out, _ = ctx.Deadline()
	return nil
}

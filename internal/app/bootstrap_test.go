package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"lumictl/internal/lighting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rigRecorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *rigRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	_ = json.NewDecoder(req.Body).Decode(&body)
	r.mu.Lock()
	r.queries = append(r.queries, body.Query)
	r.mu.Unlock()
	_, _ = w.Write([]byte(`{"data":{}}`))
}

func writeConfig(t *testing.T, endpoint, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("rig:\n  endpoint: %s\n%s", endpoint, extra)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApplicationFromPath(t *testing.T) {
	rig := &rigRecorder{}
	srv := httptest.NewServer(rig)
	defer srv.Close()

	path := writeConfig(t, srv.URL, "dashboard:\n  initialRoute: rainbow\n")
	a, err := NewApplication(NewConfig(true, false, path, ""))
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, srv.URL, a.Services().Rig.Endpoint())
	assert.Equal(t, "rainbow", a.Config().Route())

	require.NoError(t, a.Run(context.Background()))
	require.Len(t, rig.queries, 1)
	assert.Contains(t, rig.queries[0], "rainbow")
}

func TestNewApplicationBadPath(t *testing.T) {
	_, err := NewApplication(NewConfig(true, false, filepath.Join(t.TempDir(), "missing.yaml"), ""))
	assert.Error(t, err)
}

func TestCLIModeUnknownRouteFails(t *testing.T) {
	rig := &rigRecorder{}
	srv := httptest.NewServer(rig)
	defer srv.Close()

	a, err := NewApplication(NewConfig(true, false, writeConfig(t, srv.URL, ""), "disco"))
	require.NoError(t, err)
	defer a.Close()

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, lighting.ErrUnknownRoute))
	assert.Empty(t, rig.queries)
}

func TestCLIModeReportsRigFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a, err := NewApplication(NewConfig(true, false, writeConfig(t, srv.URL, ""), "off"))
	require.NoError(t, err)
	defer a.Close()

	err = a.Run(context.Background())
	assert.True(t, errors.Is(err, lighting.ErrRemoteCallFailed))
}

func TestConfigRoutePrecedence(t *testing.T) {
	c := NewConfig(false, false, "", "")
	assert.Empty(t, c.Route())

	c = NewConfig(false, false, "", "manual")
	assert.Equal(t, "manual", c.Route())
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rigStub struct {
	mu      sync.Mutex
	queries []string
	status  int
}

func (r *rigStub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	_ = json.NewDecoder(req.Body).Decode(&body)
	r.mu.Lock()
	r.queries = append(r.queries, body.Query)
	r.mu.Unlock()
	if r.status != 0 {
		w.WriteHeader(r.status)
	}
	_, _ = w.Write([]byte(`{"data":{}}`))
}

func (r *rigStub) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.queries, "\n")
}

func newRigConfig(t *testing.T, rig *rigStub) string {
	t.Helper()
	srv := httptest.NewServer(rig)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("rig:\n  endpoint: %s\n", srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestModeListJSON(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	out, err := execute(t, "--config", path, "-o", "json", "mode", "list")
	require.NoError(t, err)

	var got struct {
		Modes []struct {
			Route string `json:"route"`
		} `json:"modes"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, len(got.Modes), got.Total)
	assert.NotZero(t, got.Total)
	assert.Empty(t, rig.joined(), "listing never talks to the rig")
}

func TestModeActivate(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	out, err := execute(t, "--config", path, "-o", "json", "mode", "activate", "/rainbow")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "Rainbow"`)
	assert.Contains(t, rig.joined(), "rainbow")
}

func TestModeActivateUnknownRoute(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	_, err := execute(t, "--config", path, "-o", "table", "mode", "activate", "/disco")
	require.Error(t, err)
	assert.Empty(t, rig.joined())
}

func TestModeActivateRigFailure(t *testing.T) {
	rig := &rigStub{status: http.StatusBadGateway}
	path := newRigConfig(t, rig)

	out, err := execute(t, "--config", path, "-o", "json", "mode", "activate", "rainbow")
	require.Error(t, err)
	assert.Contains(t, out, `"error"`)
}

func TestLightSet(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	out, err := execute(t, "--config", path, "-o", "json", "light", "set", "top", "--r", "1", "--g", "0.5", "--b", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"hex": "#ff8000"`)
	assert.Contains(t, out, `"light": "TOP"`)
	assert.Contains(t, rig.joined(), "manualMode")
	assert.Contains(t, rig.joined(), "SetLight")
}

func TestLightSetRejectsOutOfRange(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	_, err := execute(t, "--config", path, "-o", "json", "light", "set", "TOP", "--r", "2", "--g", "0", "--b", "0")
	require.Error(t, err)
	assert.NotContains(t, rig.joined(), "SetLight")
}

func TestBadOutputFormat(t *testing.T) {
	rig := &rigStub{}
	path := newRigConfig(t, rig)

	_, err := execute(t, "--config", path, "-o", "xml", "mode", "list")
	assert.Error(t, err)
}

func TestSplitAddr(t *testing.T) {
	host, port, err := splitAddr("0.0.0.0:9000")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, 9000, port)

	_, _, err = splitAddr("nohost")
	assert.Error(t, err)
	_, _, err = splitAddr("localhost:99999")
	assert.Error(t, err)
}

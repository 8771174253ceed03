// Package rigclient implements lighting.RemoteLightAPI against the rig's
// GraphQL endpoint.
package rigclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lumictl/internal/lighting"
	"lumictl/internal/metrics"
	"lumictl/pkg/logging"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/time/rate"
)

const (
	subsystem = "RigClient"

	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

// Options configures a Client.
type Options struct {
	Endpoint string
	Timeout  time.Duration
	Dialect  Dialect
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
	// Mutations overrides or extends DefaultMutations.
	Mutations  map[lighting.ModeName]string
	HTTPClient *http.Client
}

// Client talks to one rig.
type Client struct {
	endpoint   string
	dialect    Dialect
	mutations  map[lighting.ModeName]string
	limiter    *rate.Limiter
	httpClient *http.Client
}

var _ lighting.RemoteLightAPI = (*Client)(nil)

// New validates opts and builds a client.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("rig endpoint is required")
	}
	dialect, err := ParseDialect(string(opts.Dialect))
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = defaultTimeout
		if opts.Timeout > 0 {
			httpClient.Timeout = opts.Timeout
		}
	}

	mutations := DefaultMutations()
	for mode, field := range opts.Mutations {
		if field == "" {
			continue
		}
		if !ValidFieldName(field) {
			return nil, fmt.Errorf("mutation %q for mode %s is not a GraphQL field name", field, mode)
		}
		mutations[mode] = field
	}

	c := &Client{
		endpoint:   opts.Endpoint,
		dialect:    dialect,
		mutations:  mutations,
		httpClient: httpClient,
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c, nil
}

// Endpoint returns the GraphQL URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Dialect returns the mutation shape in use.
func (c *Client) Dialect() Dialect { return c.dialect }

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// SetLightColor sends all three channels of one light.
func (c *Client) SetLightColor(ctx context.Context, light lighting.LightID, color lighting.Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: color %s for %s", lighting.ErrInvalidChannelValue, color, light)
	}
	return c.do(ctx, string(lighting.OpSetLightColor), setLightRequest(c.dialect, light, color))
}

// ActivateMode switches the rig into mode.
func (c *Client) ActivateMode(ctx context.Context, mode lighting.ModeName) error {
	field, ok := c.mutations[mode]
	if !ok || !ValidFieldName(field) {
		return fmt.Errorf("%w: no mutation known for mode %s", lighting.ErrRemoteCallFailed, mode)
	}
	return c.do(ctx, string(lighting.OpActivateMode), activateRequest(field))
}

func (c *Client) do(ctx context.Context, op string, gql gqlRequest) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveRigRequest(op, time.Since(start), err) }()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s: rate limiter: %v", lighting.ErrRemoteCallFailed, op, err)
		}
	}

	body, err := json.Marshal(gql)
	if err != nil {
		return fmt.Errorf("%w: %s: encode request: %v", lighting.ErrRemoteCallFailed, op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", lighting.ErrRemoteCallFailed, op, err)
	}
	requestID := lighting.RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logging.Debug(subsystem, "POST %s %s [%s]", c.endpoint, gql.OperationName, requestID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", lighting.ErrRemoteCallFailed, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: read response: %v", lighting.ErrRemoteCallFailed, op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s: HTTP %d", lighting.ErrRemoteCallFailed, op, resp.StatusCode)
	}

	var out gqlResponse
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("%w: %s: decode response: %v", lighting.ErrRemoteCallFailed, op, err)
		}
	}
	if len(out.Errors) > 0 {
		return fmt.Errorf("%w: %s: %s", lighting.ErrRemoteCallFailed, op, out.errorMessage())
	}
	if field, bad := out.rejected(); bad {
		return fmt.Errorf("%w: %s: rig answered NotOk for %s", lighting.ErrRemoteCallFailed, op, field)
	}
	return nil
}

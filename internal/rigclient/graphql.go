package rigclient

import (
	"fmt"
	"regexp"
	"strings"

	"lumictl/internal/lighting"
)

// Dialect selects the mutation shape spoken by the rig.
type Dialect string

const (
	// DialectNested sends setLight(id, color: {r, g, b}).
	DialectNested Dialect = "nested"
	// DialectLumi sends manualMode(settings: {id, r, g, b}) with LightId enum ids.
	DialectLumi Dialect = "lumi"
)

// ParseDialect accepts "" as the default dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case "", DialectNested:
		return DialectNested, nil
	case DialectLumi:
		return DialectLumi, nil
	default:
		return "", fmt.Errorf("unknown rig dialect %q (want %q or %q)", s, DialectNested, DialectLumi)
	}
}

// DefaultMutations maps built-in modes to the rig's activation fields.
func DefaultMutations() map[lighting.ModeName]string {
	return map[lighting.ModeName]string{
		lighting.ModeOff:        "offMode",
		lighting.ModeManual:     "manualMode",
		lighting.ModePinkPulse:  "pinkPulse",
		lighting.ModeRainbow:    "rainbow",
		lighting.ModeController: "controller",
	}
}

var fieldName = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// ValidFieldName reports whether s is a GraphQL name usable as a mutation field.
func ValidFieldName(s string) bool {
	return fieldName.MatchString(s)
}

type gqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []gqlError     `json:"errors"`
}

const (
	nestedSetLight = `mutation SetLight($lightId: String!, $r: Float!, $g: Float!, $b: Float!) {
  setLight(id: $lightId, color: {r: $r, g: $g, b: $b}) {
    id
  }
}`

	lumiSetLight = `mutation SetLight($lightId: LightId!, $r: Float!, $g: Float!, $b: Float!) {
  manualMode(settings: {id: $lightId, r: $r, g: $g, b: $b})
}`
)

func setLightRequest(d Dialect, light lighting.LightID, c lighting.Color) gqlRequest {
	query := nestedSetLight
	if d == DialectLumi {
		query = lumiSetLight
	}
	return gqlRequest{
		Query:         query,
		OperationName: "SetLight",
		Variables: map[string]any{
			"lightId": string(light),
			"r":       c.R,
			"g":       c.G,
			"b":       c.B,
		},
	}
}

func activateRequest(field string) gqlRequest {
	name := "Activate" + strings.ToUpper(field[:1]) + field[1:]
	return gqlRequest{
		Query:         fmt.Sprintf("mutation %s { %s }", name, field),
		OperationName: name,
	}
}

// rejected reports a mutation that answered with the rig's NotOk result.
func (r gqlResponse) rejected() (string, bool) {
	for field, v := range r.Data {
		if s, ok := v.(string); ok && strings.EqualFold(strings.ReplaceAll(s, "_", ""), "notok") {
			return field, true
		}
	}
	return "", false
}

func (r gqlResponse) errorMessage() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

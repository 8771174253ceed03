// Package cli renders lighting results for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lumictl/internal/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat accepts "" as table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputFormatTable, nil
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes results in one format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	if format == "" {
		format = OutputFormatTable
	}
	return &Printer{out: out, format: format}
}

// PrintModes lists the registered modes.
func (p *Printer) PrintModes(modes []api.ModeInfo) error {
	if p.format != OutputFormatTable {
		return p.encode(map[string]any{"modes": modes, "total": len(modes)})
	}
	if len(modes) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint("No modes registered"))
		return nil
	}

	t := p.newTable()
	t.AppendHeader(header("route", "title", "mode", "lights", "active"))
	for _, m := range modes {
		t.AppendRow(table.Row{m.Route, m.Title, m.Mode, formatLights(m.Lights), formatActive(m.Active)})
	}
	t.Render()
	fmt.Fprintf(p.out, "\n%s %v modes\n", text.FgHiBlue.Sprint("Total:"), text.FgHiWhite.Sprint(len(modes)))
	return nil
}

// PrintModeStatus reports an activation.
func (p *Printer) PrintModeStatus(s *api.ModeStatus) error {
	if p.format != OutputFormatTable {
		return p.encode(s)
	}
	t := p.newTable()
	t.AppendHeader(header("property", "value"))
	t.AppendRow(table.Row{"route", s.Route})
	t.AppendRow(table.Row{"mode", s.Mode})
	t.AppendRow(table.Row{"state", formatState(s.State)})
	if !s.Dispatched {
		t.AppendRow(table.Row{"note", text.FgHiBlack.Sprint("already mounted, nothing sent")})
	}
	if s.Error != "" {
		t.AppendRow(table.Row{"error", text.FgRed.Sprint(s.Error)})
	}
	t.Render()
	return nil
}

// PrintLight reports one light's color.
func (p *Printer) PrintLight(s *api.LightStatus) error {
	if p.format != OutputFormatTable {
		return p.encode(s)
	}
	t := p.newTable()
	t.AppendHeader(header("light", "hex", "r", "g", "b", "route"))
	hex := s.Hex
	if !s.Known {
		hex = text.FgHiBlack.Sprint("unknown")
	}
	route := s.Route
	if route == "" {
		route = "-"
	}
	t.AppendRow(table.Row{
		s.Light, hex,
		fmt.Sprintf("%.2f", s.Color.R),
		fmt.Sprintf("%.2f", s.Color.G),
		fmt.Sprintf("%.2f", s.Color.B),
		route,
	})
	t.Render()
	if s.Error != "" {
		fmt.Fprintf(p.out, "%s %s\n", text.FgRed.Sprint("Error:"), s.Error)
	}
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(p.out, string(data))
		return nil
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		fmt.Fprint(p.out, string(data))
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(c))
	}
	return row
}

func formatLights(lights []string) string {
	if len(lights) == 0 {
		return text.FgHiBlack.Sprint("-")
	}
	return strings.Join(lights, ", ")
}

func formatActive(active bool) string {
	if active {
		return text.FgGreen.Sprint("● active")
	}
	return text.FgHiBlack.Sprint("○")
}

func formatState(state string) string {
	switch strings.ToLower(state) {
	case "active":
		return text.FgGreen.Sprint(state)
	case "inactive":
		return text.FgHiBlack.Sprint(state)
	case "activating":
		return text.FgYellow.Sprint(state)
	default:
		return state
	}
}

// Package styles defines the visual styling of uniqr's diagnostics.
//
// Styles use semantic names (Error, Hint, FilePath) and adaptive colors
// defined in the embedded styles.yaml. Output written to a stream that is
// not a terminal, or with NO_COLOR set, is left unstyled so redirected
// stderr stays plain text.
package styles

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// defaults holds the parsed embedded styles
var defaults Config

func init() {
	cfg, err := Parse(embeddedStyles)
	if err != nil {
		// Unstyled output is still correct output
		cfg = Config{}
	}
	defaults = cfg
}

// Parse reads a styles configuration from YAML
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return cfg, nil
}

// Styler renders semantic styles for one output stream.
type Styler struct {
	renderer *lipgloss.Renderer
	registry map[string]lipgloss.Style
}

// New returns a Styler for out using the embedded styles. Color is
// disabled when DetectColor reports the stream can't show it.
func New(out *os.File) *Styler {
	profile := termenv.Ascii
	if DetectColor(out) {
		profile = termenv.NewOutput(out).ColorProfile()
	}
	return NewWithProfile(out, profile, defaults)
}

// NewWithProfile returns a Styler writing to w with a fixed color profile
// and style configuration.
func NewWithProfile(w io.Writer, profile termenv.Profile, cfg Config) *Styler {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		registry[name] = buildStyle(renderer, colors, def)
	}

	return &Styler{renderer: renderer, registry: registry}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(renderer *lipgloss.Renderer, colors map[string]lipgloss.AdaptiveColor, def StyleDef) lipgloss.Style {
	style := renderer.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Style safely retrieves a style from the registry
func (s *Styler) Style(name string) lipgloss.Style {
	if style, ok := s.registry[name]; ok {
		return style
	}
	return s.renderer.NewStyle()
}

// Render applies the named style to text
func (s *Styler) Render(name, text string) string {
	return s.Style(name).Render(text)
}

// DetectColor reports whether out should receive colored output
func DetectColor(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Piped or redirected
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}

	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}

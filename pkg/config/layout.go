package config

import (
	"strings"

	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/arthur-debert/oaklog/pkg/oaklog"
)

// Sink outputs with a special meaning; anything else is a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Sink color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Layout is the declarative form of an oaklog.Logger.
type Layout struct {
	Items    []string     `koanf:"items" yaml:"items" toml:"items"`
	Severity string       `koanf:"severity" yaml:"severity" toml:"severity"`
	Color    string       `koanf:"color" yaml:"color" toml:"color"`
	Newline  bool         `koanf:"newline" yaml:"newline" toml:"newline"`
	Policy   string       `koanf:"policy" yaml:"policy" toml:"policy"`
	Sinks    []SinkConfig `koanf:"sinks" yaml:"sinks" toml:"sinks"`
}

// SinkConfig describes one sink of a Layout.
type SinkConfig struct {
	// Output is "stdout", "stderr" or a file path opened for appending.
	Output string `koanf:"output" yaml:"output" toml:"output"`
	// Separator defaults to a single space when unset.
	Separator     *string `koanf:"separator" yaml:"separator,omitempty" toml:"separator,omitempty"`
	SeparateItems bool    `koanf:"separate_items" yaml:"separate_items" toml:"separate_items"`
	// Color is "auto", "always" or "never". Auto enables color on terminals
	// only.
	Color string `koanf:"color" yaml:"color" toml:"color"`
}

// separator returns the configured separator, or the default single space.
func (s SinkConfig) separator() string {
	if s.Separator == nil {
		return " "
	}
	return *s.Separator
}

// Resolved is a Layout with every string parsed.
type Resolved struct {
	Items  []oaklog.Item
	Color  oaklog.Color
	Policy oaklog.FailurePolicy
}

// Validate parses every field of the layout, returning a CONFIG_INVALID
// error for the first one that does not parse.
func (l *Layout) Validate() (*Resolved, error) {
	items, err := oaklog.ParseItems(l.Items)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid items")
	}
	color, err := oaklog.ParseColor(l.Color)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid color")
	}
	policy, err := oaklog.ParseFailurePolicy(l.Policy)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid policy")
	}
	for i, s := range l.Sinks {
		if strings.TrimSpace(s.Output) == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "sink %d has no output", i).WithDetail("sink", i)
		}
		switch strings.ToLower(s.Color) {
		case "", ColorAuto, ColorAlways, ColorNever:
		default:
			return nil, errors.Newf(errors.ErrConfigValid, "sink %d: unknown color mode %q", i, s.Color).
				WithDetail("sink", i)
		}
	}
	return &Resolved{Items: items, Color: color, Policy: policy}, nil
}

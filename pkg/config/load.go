package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	oakerrors "github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/arthur-debert/oaklog/pkg/logging"
)

// EnvPrefix prefixes environment overrides: OAKLOG_SEVERITY=WARN.
const EnvPrefix = "OAKLOG_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultContent returns the built-in layout as TOML.
func DefaultContent() string {
	return string(defaultConfig)
}

// Load builds a layout from the built-in defaults, then the file at path
// (skipped when path is empty), then OAKLOG_* environment variables.
func Load(path string) (*Layout, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, oakerrors.Wrap(err, oakerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Layout file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, oakerrors.Wrapf(err, oakerrors.ErrConfigLoad, "cannot read %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, oakerrors.Wrapf(err, oakerrors.ErrConfigParse, "failed to parse %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded layout file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, oakerrors.Wrap(err, oakerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var layout Layout
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &layout,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &layout, unmarshalConf); err != nil {
		return nil, oakerrors.Wrap(err, oakerrors.ErrConfigParse, "failed to unmarshal layout")
	}

	for i := range layout.Items {
		layout.Items[i] = strings.TrimSpace(layout.Items[i])
	}

	logger.Debug().
		Strs("items", layout.Items).
		Int("sinks", len(layout.Sinks)).
		Msg("Layout loaded")
	return &layout, nil
}

// LoadDefault loads the first layout file found by FindConfigFile, or only
// defaults and environment when there is none.
func LoadDefault() (*Layout, error) {
	return Load(FindConfigFile())
}

// FindConfigFile searches the XDG config directories for oaklog/oaklog.toml,
// then oaklog/oaklog.yaml. It returns "" when neither exists.
func FindConfigFile() string {
	for _, name := range []string{"oaklog.toml", "oaklog.yaml", "oaklog.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join("oaklog", name)); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfigPath is where `oaklog config --write` puts a new file.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "oaklog", "oaklog.toml")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, oakerrors.Newf(oakerrors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

package config

import (
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/oaklog/pkg/errors"
)

// Dump formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Dump writes the layout to w as YAML or TOML, in a form Load reads back.
func Dump(w io.Writer, layout *Layout, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		data, err = yaml.Marshal(layout)
	case FormatTOML, "":
		data, err = toml.Marshal(layout)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode layout as %s", format)
	}
	_, err = w.Write(data)
	return err
}

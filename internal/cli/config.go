package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/oaklog/pkg/config"
	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var (
		configPath string
		format     string
		write      bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := loadLayout(configPath)
			if err != nil {
				return err
			}

			if !write {
				return config.Dump(cmd.OutOrStdout(), layout, format)
			}

			// the written file is always TOML, the first format searched
			var buf bytes.Buffer
			if err := config.Dump(&buf, layout, config.FormatTOML); err != nil {
				return err
			}
			path := config.DefaultConfigPath()
			if err := writeNewFile(path, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

// writeNewFile creates path with data, refusing to replace an existing file.
func writeNewFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", path).WithDetail("path", path)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to close %s", path)
	}
	return nil
}

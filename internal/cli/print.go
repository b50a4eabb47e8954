package cli

import (
	"strings"

	"github.com/arthur-debert/oaklog/pkg/config"
	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/arthur-debert/oaklog/pkg/logging"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	var (
		configPath string
		severity   string
		items      string
		color      string
		noNewline  bool
		file       string
	)

	cmd := &cobra.Command{
		Use:     "print [text...]",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.print")
			defer logging.LogOperationStart(logger, "print")()

			layout, err := loadLayout(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("severity") {
				layout.Severity = severity
			}
			if flags.Changed("items") {
				layout.Items = strings.Split(items, ",")
				for i := range layout.Items {
					layout.Items[i] = strings.TrimSpace(layout.Items[i])
				}
			}
			if flags.Changed("color") {
				layout.Color = color
			}
			if noNewline {
				layout.Newline = false
			}
			if file != "" {
				layout.Sinks = append(layout.Sinks, config.SinkConfig{Output: file, Color: config.ColorNever})
			}

			built, err := layout.Build(config.Streams{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			logger.Debug().
				Strs("items", layout.Items).
				Int("sinks", len(layout.Sinks)).
				Msg("Printing line")

			printErr := built.Logger.Print(strings.Join(args, " "))
			return errors.Join(printErr, built.Close())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringVarP(&severity, "severity", "s", "", MsgFlagSeverity)
	cmd.Flags().StringVarP(&items, "items", "i", "", MsgFlagItems)
	cmd.Flags().StringVar(&color, "color", "", MsgFlagColor)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)

	return cmd
}

package cli

import (
	"fmt"

	"github.com/arthur-debert/oaklog/pkg/oaklog"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

const sampleText = "hello"

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: MsgItemsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pterm.DefaultTable.
				WithHasHeader().
				WithData(itemRows()).
				Srender()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(MsgItemsHeading))
			fmt.Fprintln(out, table)
			return nil
		},
	}
}

// itemRows renders every item alone, as a logger configured with only that
// item would print it.
func itemRows() pterm.TableData {
	rows := pterm.TableData{{"ITEM", "SAMPLE"}}
	sink := oaklog.NewSink(nil)
	for _, item := range oaklog.AllItems() {
		l := oaklog.New(
			oaklog.WithItems(item),
			oaklog.WithSeverity("INFO"),
			oaklog.WithNewline(false),
		)
		rows = append(rows, []string{item.String(), l.Render(sink, sampleText)})
	}
	return rows
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/csvgrid/pkg/grid"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var (
		columns string
		fill    string
		border  string
		submit  bool
	)

	cmd := &cobra.Command{
		Use:   "edit [values]",
		Short: "Edit values interactively and watch the grid update",
		Long: `Edit opens a two-field editor for the values and the column count. The grid
is redrawn on every keystroke, or only when Enter is pressed with --submit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := c.Config.Defaults
			if !cmd.Flags().Changed("columns") {
				columns = d.ColumnsText()
			}
			if !cmd.Flags().Changed("border") {
				border = d.Border
			}
			f := d.Fill
			if cmd.Flags().Changed("fill") {
				parsed, err := grid.ParseFill(fill)
				if err != nil {
					return err
				}
				f = parsed
			}

			var values string
			if len(args) == 1 {
				values = args[0]
			}

			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			defer runner.Close()

			ctx := cmd.Context()
			model := NewEditorModel(ctx, runner, values, columns, f, border, submit)
			p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&columns, "columns", "c", "", "initial number of columns")
	cmd.Flags().StringVar(&fill, "fill", "", "fill order: rows (default), columns")
	cmd.Flags().StringVar(&border, "border", "", "table border style")
	cmd.Flags().BoolVar(&submit, "submit", false, "redraw only when Enter is pressed")
	registerGridFlagCompletions(cmd)

	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
)

// stylesCommand creates the styles command.
func (c *CLI) stylesCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the generator styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if namesOnly {
				fmt.Println(strings.Join(layout.Names(), "\n"))
				return nil
			}
			fmt.Println(stylesTable())
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print only the style names")
	return cmd
}

func stylesTable() string {
	rows := make([][]string, 0, len(layout.All()))
	for _, s := range layout.All() {
		rows = append(rows, []string{s.Name, s.Description})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Style", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

// completeStyles completes --style flags.
func completeStyles(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range layout.All() {
		if strings.HasPrefix(s.Name, toComplete) {
			out = append(out, s.Name+"\t"+s.Description)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

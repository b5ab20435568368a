package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/tcalc/internal/calc"
)

// newKeypadCommand creates the keypad command
func newKeypadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keypad",
		Short: "Show the button layout",
		Long:  "Display the keypad buttons row by row, as accepted by the press command.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, row := range calc.Keypad {
				cells := make([]string, 0, len(row))
				for _, label := range row {
					cells = append(cells, fmt.Sprintf("[%3s ]", label))
				}
				fmt.Fprintln(out, strings.Join(cells, " "))
			}
		},
	}
}

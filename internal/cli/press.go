package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/tcalc/internal/calc"
	"github.com/yildizm/tcalc/internal/logging"
	"github.com/yildizm/tcalc/internal/ui"
)

// labelAliases lets shell-friendly characters stand in for keypad glyphs
var labelAliases = map[string]string{
	"*": "×",
	"x": "×",
	"/": "÷",
}

// pressStep is one button press and the display after it
type pressStep struct {
	Label   string
	Display string
}

// newPressCommand creates the press command
func newPressCommand() *cobra.Command {
	var final bool

	pressCmd := &cobra.Command{
		Use:   "press <button>...",
		Short: "Press keypad buttons without the interactive keypad",
		Long: `Press keypad buttons in order and print the display after each press.

Each argument is either one button label (C, %, +/-, <-, =, digits, ., + - × ÷)
or a run of single-character labels such as 12+3. The characters * x and /
may be used for × and ÷.`,
		Example: `  # Add two numbers
  tcalc press 2 + 2 =

  # Chain onto a result and only print the final display
  tcalc press --final 3x3 = +1 =

  # Toggle the sign
  tcalc press 5 +/-`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := parseLabels(args)
			if err != nil {
				return err
			}

			steps := pressAll(calc.New(calc.WithLogger(logging.Stderr(verbose))), labels)

			out := cmd.OutOrStdout()
			if final {
				fmt.Fprintln(out, steps[len(steps)-1].Display)
				return nil
			}

			_, err = io.WriteString(out, formatSteps(steps, useColor(out)))
			return err
		},
	}

	pressCmd.Flags().BoolVar(&final, "final", false, "only print the display after the last press")

	return pressCmd
}

// parseLabels turns command line arguments into keypad labels
func parseLabels(args []string) ([]string, error) {
	var labels []string
	for _, arg := range args {
		if label, ok := keypadLabel(arg); ok {
			labels = append(labels, label)
			continue
		}
		for _, r := range arg {
			label, ok := keypadLabel(string(r))
			if !ok {
				return nil, fmt.Errorf("unknown button %q in %q", string(r), arg)
			}
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no buttons to press")
	}
	return labels, nil
}

func keypadLabel(s string) (string, bool) {
	if alias, ok := labelAliases[strings.ToLower(s)]; ok {
		s = alias
	}
	if strings.EqualFold(s, calc.LabelClear) {
		s = calc.LabelClear
	}
	return s, calc.IsKeypadLabel(s)
}

// pressAll presses every label and records the display after each press
func pressAll(c *calc.Calculator, labels []string) []pressStep {
	steps := make([]pressStep, 0, len(labels))
	for _, label := range labels {
		steps = append(steps, pressStep{Label: label, Display: c.Press(label)})
	}
	return steps
}

// formatSteps renders the presses as a tree of label and display
func formatSteps(steps []pressStep, color bool) string {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = false

	items := make([]termfmt.TreeItem, 0, len(steps))
	for i, step := range steps {
		display := step.Display
		if display == "" {
			display = "(empty)"
		}
		items = append(items, termfmt.TreeItem{
			Label: step.Label,
			Value: display,
			Last:  i == len(steps)-1,
		})
	}

	return termfmt.TreeViewWithOptions(items, opts) + "\n"
}

// useColor reports whether colored output should be written to out
func useColor(out io.Writer) bool {
	if noColor || ui.IsColorDisabled() {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

package calc

// Action is the operation a button label triggers
type Action int

const (
	ActionAppend Action = iota
	ActionClear
	ActionPercent
	ActionToggleSign
	ActionBackspace
	ActionEvaluate
)

// String returns the string representation of an Action
func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	case ActionPercent:
		return "percent"
	case ActionToggleSign:
		return "toggle-sign"
	case ActionBackspace:
		return "backspace"
	case ActionEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Button labels with a dedicated action
const (
	LabelClear      = "C"
	LabelPercent    = "%"
	LabelToggleSign = "+/-"
	LabelBackspace  = "<-"
	LabelEquals     = "="
)

// Keypad is the fixed button layout, row by row
var Keypad = [][]string{
	{LabelClear, LabelPercent, LabelToggleSign, "×"},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", Decimal, LabelBackspace, LabelEquals},
}

// ActionFor maps a button label to its action. Every label without a
// dedicated action appends itself to the input.
func ActionFor(label string) Action {
	switch label {
	case LabelClear:
		return ActionClear
	case LabelPercent:
		return ActionPercent
	case LabelToggleSign:
		return ActionToggleSign
	case LabelBackspace:
		return ActionBackspace
	case LabelEquals:
		return ActionEvaluate
	default:
		return ActionAppend
	}
}

// Labels returns every keypad label in layout order
func Labels() []string {
	labels := make([]string, 0, len(Keypad)*len(Keypad[0]))
	for _, row := range Keypad {
		labels = append(labels, row...)
	}
	return labels
}

// IsKeypadLabel reports whether label is one of the keypad buttons
func IsKeypadLabel(label string) bool {
	for _, l := range Labels() {
		if l == label {
			return true
		}
	}
	return false
}

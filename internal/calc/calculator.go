package calc

import (
	"log/slog"
)

// Calculator owns the input buffer and dispatches button presses to it.
// It is not safe for concurrent use; drive it from a single event loop.
type Calculator struct {
	buffer    *Buffer
	evaluator Evaluator
	display   string
	logger    *slog.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithEvaluator replaces the default expression evaluator
func WithEvaluator(evaluator Evaluator) Option {
	return func(c *Calculator) {
		c.evaluator = evaluator
	}
}

// WithLogger sets the logger used for failed operations
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// New creates a calculator with an empty input
func New(opts ...Option) *Calculator {
	c := &Calculator{
		buffer:    NewBuffer(),
		evaluator: NewExpressionEvaluator(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Press handles one button press and returns the new display text
func (c *Calculator) Press(label string) string {
	action := ActionFor(label)
	c.logger.Debug("button pressed", "label", label, "action", action.String())

	switch action {
	case ActionClear:
		c.buffer.Clear()
		c.display = ""
	case ActionBackspace:
		if c.buffer.Backspace() {
			c.display = c.buffer.String()
		}
	case ActionPercent:
		c.apply(c.buffer.Percentage())
	case ActionToggleSign:
		c.apply(c.buffer.ToggleSign())
	case ActionEvaluate:
		c.Evaluate()
	default:
		if c.buffer.Append(label) {
			c.display = c.buffer.String()
		}
	}

	return c.display
}

// Evaluate evaluates the current input. On success the result becomes the
// new input so further operators chain onto it.
func (c *Calculator) Evaluate() Outcome {
	input := c.buffer.String()
	outcome := c.evaluator.Evaluate(input)
	if !outcome.OK() {
		c.fail(outcome.Err)
		return outcome
	}

	c.buffer.Set(outcome.Text)
	c.display = outcome.Text
	c.logger.Debug("evaluated", "input", input, "result", outcome.Text)
	return outcome
}

// Display returns the text currently shown
func (c *Calculator) Display() string {
	return c.display
}

// Input returns the expression typed so far
func (c *Calculator) Input() string {
	return c.buffer.String()
}

func (c *Calculator) apply(err error) {
	if err != nil {
		c.fail(err)
		return
	}
	c.display = c.buffer.String()
}

func (c *Calculator) fail(err error) {
	c.buffer.Clear()
	c.display = ErrorText
	c.logger.Debug("calculation failed", "error", err)
}

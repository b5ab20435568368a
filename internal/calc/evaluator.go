package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

// OutcomeKind tags an evaluation result
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeError
)

// String returns the string representation of the kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one evaluation: either Success carrying the
// result text or Error carrying the cause.
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// OK reports whether the evaluation succeeded
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Success builds a successful outcome
func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

// Failure builds an error outcome
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeError, Text: ErrorText, Err: err}
}

// Evaluator turns an accumulated expression into an outcome. Implementations
// must not panic and must report every failure as an error outcome.
type Evaluator interface {
	Evaluate(expression string) Outcome
}

// glyphReplacer maps display glyphs to ASCII operators and spaces every
// operator out, so govaluate lexes "2*-3" as "2 * - 3" instead of one "*-" token
var glyphReplacer = strings.NewReplacer(
	"×", " * ",
	"÷", " / ",
	"*", " * ",
	"/", " / ",
	"+", " + ",
	"-", " - ",
)

// NormalizeExpression replaces the display glyphs for multiplication and
// division with their ASCII operators and separates operators with spaces
func NormalizeExpression(expression string) string {
	return strings.TrimSpace(glyphReplacer.Replace(expression))
}

// ExpressionEvaluator evaluates arithmetic with govaluate, which applies
// standard operator precedence and floating point division
type ExpressionEvaluator struct{}

// NewExpressionEvaluator creates the default evaluator
func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{}
}

// Evaluate implements Evaluator
func (e *ExpressionEvaluator) Evaluate(expression string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = evalFailure(expression, fmt.Errorf("%w: %v", ErrEvaluation, r))
		}
	}()

	normalized := NormalizeExpression(expression)
	expr, err := govaluate.NewEvaluableExpression(normalized)
	if err != nil {
		return evalFailure(expression, fmt.Errorf("%w: %v", ErrEvaluation, err))
	}

	result, err := expr.Evaluate(nil)
	if err != nil {
		return evalFailure(expression, fmt.Errorf("%w: %v", ErrEvaluation, err))
	}

	value, ok := result.(float64)
	if !ok {
		return evalFailure(expression, fmt.Errorf("%w: non-numeric result %v", ErrEvaluation, result))
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return evalFailure(expression, ErrNonFinite)
	}

	return Success(FormatNumber(value))
}

func evalFailure(expression string, err error) Outcome {
	return Failure(&OpError{Op: "evaluate", Input: expression, Err: err})
}

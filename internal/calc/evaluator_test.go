package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionEvaluator(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr error
	}{
		{name: "addition", expr: "2+2", want: "4"},
		{name: "precedence", expr: "2+3×4", want: "14"},
		{name: "float division", expr: "7÷2", want: "3.5"},
		{name: "ascii operators", expr: "3*3", want: "9"},
		{name: "decimals", expr: "0.1+0.2", want: "0.30000000000000004"},
		{name: "negative result", expr: "2-5", want: "-3"},
		{name: "single number", expr: "42", want: "42"},
		{name: "negative second operand", expr: "2×-3", want: "-6"},
		{name: "subtract negative", expr: "5--3", want: "8"},
		{name: "both operands negative", expr: "-5×-2", want: "10"},
		{name: "divide by negative", expr: "9÷-3", want: "-3"},
		{name: "large literal", expr: "1000000000000000000000+1", want: "1000000000000000000000"},
		{name: "small literal", expr: "0.0000001+1", want: "1.0000001"},
		{name: "division by zero", expr: "5/0", wantErr: ErrNonFinite},
		{name: "negative division by zero", expr: "-5÷0", wantErr: ErrNonFinite},
		{name: "zero over zero", expr: "0/0", wantErr: ErrNonFinite},
		{name: "malformed", expr: "2+*", wantErr: ErrEvaluation},
		{name: "trailing operator", expr: "2+", wantErr: ErrEvaluation},
		{name: "empty", expr: "", wantErr: ErrEvaluation},
	}

	evaluator := NewExpressionEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := evaluator.Evaluate(tt.expr)
			if tt.wantErr != nil {
				assert.Equal(t, OutcomeError, outcome.Kind)
				assert.Equal(t, ErrorText, outcome.Text)
				assert.True(t, errors.Is(outcome.Err, tt.wantErr), "got %v", outcome.Err)
				assert.True(t, errors.Is(outcome.Err, ErrCalculation))
				return
			}
			assert.True(t, outcome.OK(), "unexpected error: %v", outcome.Err)
			assert.Equal(t, tt.want, outcome.Text)
			assert.NoError(t, outcome.Err)
		})
	}
}

func TestNormalizeExpression(t *testing.T) {
	assert.Equal(t, "6 * 2 / 3", NormalizeExpression("6×2÷3"))
	assert.Equal(t, "1 + 2", NormalizeExpression("1+2"))
	assert.Equal(t, "2 *  - 3", NormalizeExpression("2×-3"))
	assert.Equal(t, "- 5", NormalizeExpression("-5"))
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "error", OutcomeError.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}

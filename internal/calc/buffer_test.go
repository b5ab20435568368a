package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAppendDecimal(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
		changed bool
	}{
		{name: "empty buffer", initial: "", want: ".", changed: true},
		{name: "integer run", initial: "12", want: "12.", changed: true},
		{name: "run already has decimal", initial: "1.2", want: "1.2", changed: false},
		{name: "new run after plus", initial: "1.2+3", want: "1.2+3.", changed: true},
		{name: "new run after times glyph", initial: "1.5×", want: "1.5×.", changed: true},
		{name: "second decimal after operator", initial: "1.5÷2.5", want: "1.5÷2.5", changed: false},
		{name: "new run after minus", initial: "0.1-", want: "0.1-.", changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.Set(tt.initial)
			assert.Equal(t, tt.changed, b.Append(Decimal))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBufferAppendTokens(t *testing.T) {
	b := NewBuffer()
	for _, tok := range []string{"1", "2", "+", "3", "×", "4"} {
		require.True(t, b.Append(tok))
	}
	assert.Equal(t, "12+3×4", b.String())
	assert.False(t, b.Append(""))
}

func TestBufferBackspace(t *testing.T) {
	b := NewBuffer()
	assert.False(t, b.Backspace())
	assert.True(t, b.IsEmpty())

	b.Set("7÷")
	require.True(t, b.Backspace())
	assert.Equal(t, "7", b.String())
	require.True(t, b.Backspace())
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Backspace())
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	b.Set("1+2")
	b.Clear()
	assert.True(t, b.IsEmpty())
	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestBufferToggleSign(t *testing.T) {
	b := NewBuffer()
	b.Set("5")

	require.NoError(t, b.ToggleSign())
	assert.Equal(t, "-5", b.String())

	require.NoError(t, b.ToggleSign())
	assert.Equal(t, "5", b.String())

	b.Set("0")
	require.NoError(t, b.ToggleSign())
	assert.Equal(t, "0", b.String())

	b.Set("2.5")
	require.NoError(t, b.ToggleSign())
	assert.Equal(t, "-2.5", b.String())
}

func TestBufferPercentage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"50", "0.5"},
		{"100", "1"},
		{"-25", "-0.25"},
		{"0.5", "0.005"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b := NewBuffer()
			b.Set(tt.input)
			require.NoError(t, b.Percentage())
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBufferNonNumericInput(t *testing.T) {
	inputs := []string{"2+", "", "1+2", ".", "3×"}

	for _, input := range inputs {
		t.Run("toggle "+input, func(t *testing.T) {
			b := NewBuffer()
			b.Set(input)
			err := b.ToggleSign()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, errors.Is(err, ErrCalculation))
			assert.True(t, b.IsEmpty())
		})

		t.Run("percent "+input, func(t *testing.T) {
			b := NewBuffer()
			b.Set(input)
			err := b.Percentage()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, b.IsEmpty())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{4, "4"},
		{0.5, "0.5"},
		{-5, "-5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{-1e22, "-10000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.Copysign(0, -1), "0"},
		{123456789, "123456789"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.value))
	}
}

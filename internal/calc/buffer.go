package calc

import (
	"strings"
	"unicode/utf8"
)

// Decimal is the decimal point token
const Decimal = "."

// Buffer accumulates the expression typed so far. It holds at most one
// decimal point per numeric run.
type Buffer struct {
	text string
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// String returns the buffer content
func (b *Buffer) String() string {
	return b.text
}

// IsEmpty reports whether nothing has been typed
func (b *Buffer) IsEmpty() bool {
	return b.text == ""
}

// Set replaces the whole buffer, e.g. with an evaluation result
func (b *Buffer) Set(text string) {
	b.text = text
}

// Append adds token to the end of the buffer. A decimal point is ignored
// when the current numeric run already has one. It reports whether the
// buffer changed.
func (b *Buffer) Append(token string) bool {
	if token == "" {
		return false
	}
	if token == Decimal && strings.Contains(b.currentRun(), Decimal) {
		return false
	}
	b.text += token
	return true
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.text = ""
}

// Backspace removes the last character. Operator glyphs are a single
// character even when they are multi-byte.
func (b *Buffer) Backspace() bool {
	if b.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
	return true
}

// ToggleSign negates the buffer when it holds a single number. Otherwise
// the buffer is cleared and the error returned.
func (b *Buffer) ToggleSign() error {
	v, err := parseNumber(b.text)
	if err != nil {
		input := b.text
		b.Clear()
		return &OpError{Op: "toggle sign", Input: input, Err: err}
	}
	b.text = FormatNumber(-v)
	return nil
}

// Percentage divides the buffer by 100 when it holds a single number.
// Otherwise the buffer is cleared and the error returned.
func (b *Buffer) Percentage() error {
	v, err := parseNumber(b.text)
	if err != nil {
		input := b.text
		b.Clear()
		return &OpError{Op: "percentage", Input: input, Err: err}
	}
	b.text = FormatNumber(v / 100)
	return nil
}

// currentRun returns the text after the last operator
func (b *Buffer) currentRun() string {
	if i := strings.LastIndexFunc(b.text, isOperator); i >= 0 {
		_, size := utf8.DecodeRuneInString(b.text[i:])
		return b.text[i+size:]
	}
	return b.text
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '×', '÷':
		return true
	}
	return false
}

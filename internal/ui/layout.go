package ui

import (
	"unicode/utf8"

	"github.com/yildizm/tcalc/internal/calc"
)

// Keypad geometry in terminal cells. Every button is a bordered box, so a
// cell is two columns wider and two rows taller than its label area.
const (
	keypadColumns    = 4
	buttonWidth      = 7
	buttonCellWidth  = buttonWidth + 2
	buttonCellHeight = 3
	titleHeight      = 1
	displayHeight    = 3
	gridTop          = titleHeight + displayHeight
	displayWidth     = keypadColumns*buttonCellWidth - 2
)

// buttonAt maps a screen position to the keypad cell under it
func buttonAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < gridTop {
		return 0, 0, false
	}
	row = (y - gridTop) / buttonCellHeight
	col = x / buttonCellWidth
	if row >= len(calc.Keypad) || col >= keypadColumns {
		return 0, 0, false
	}
	return row, col, true
}

// buttonCenter returns a screen position inside the given keypad cell
func buttonCenter(row, col int) (x, y int) {
	return col*buttonCellWidth + buttonCellWidth/2, gridTop + row*buttonCellHeight + buttonCellHeight/2
}

// fitDisplay keeps the tail of text when it is wider than the display so
// the most recent input stays visible
func fitDisplay(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n <= width {
		return text
	}
	runes := []rune(text)
	return "…" + string(runes[n-width+1:])
}

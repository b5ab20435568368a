package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the keypad
type Theme struct {
	Name string

	// Display colors
	DisplayForeground lipgloss.AdaptiveColor
	DisplayBackground lipgloss.AdaptiveColor
	Error             lipgloss.AdaptiveColor

	// Button colors
	Button     lipgloss.AdaptiveColor
	ButtonText lipgloss.AdaptiveColor
	Operator   lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	AccentText lipgloss.AdaptiveColor
	Focused    lipgloss.AdaptiveColor
	Pressed    lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	Title      lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given [light, dark] colors
func buildTheme(name string, displayFg, displayBg, errorColor, button, buttonText, operator, accent, accentText, focused, pressed, border, title, muted [2]string) Theme {
	return Theme{
		Name:              name,
		DisplayForeground: lipgloss.AdaptiveColor{Light: displayFg[0], Dark: displayFg[1]},
		DisplayBackground: lipgloss.AdaptiveColor{Light: displayBg[0], Dark: displayBg[1]},
		Error:             lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Button:            lipgloss.AdaptiveColor{Light: button[0], Dark: button[1]},
		ButtonText:        lipgloss.AdaptiveColor{Light: buttonText[0], Dark: buttonText[1]},
		Operator:          lipgloss.AdaptiveColor{Light: operator[0], Dark: operator[1]},
		Accent:            lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		AccentText:        lipgloss.AdaptiveColor{Light: accentText[0], Dark: accentText[1]},
		Focused:           lipgloss.AdaptiveColor{Light: focused[0], Dark: focused[1]},
		Pressed:           lipgloss.AdaptiveColor{Light: pressed[0], Dark: pressed[1]},
		Border:            lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Title:             lipgloss.AdaptiveColor{Light: title[0], Dark: title[1]},
		Muted:             lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#FFFFFF", "#FFFFFF"}, [2]string{"#000000", "#000000"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#000000", "#1F2937"}, [2]string{"#FFFFFF", "#F9FAFB"}, [2]string{"#1E40AF", "#3B82F6"},
		[2]string{"#121393", "#0006CA"}, [2]string{"#FFFFFF", "#FFFFFF"}, [2]string{"#444444", "#444444"},
		[2]string{"#222222", "#222222"}, [2]string{"#D1D5DB", "#374151"}, [2]string{"#1E40AF", "#3B82F6"},
		[2]string{"#6B7280", "#9CA3AF"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#FFFFFF", "#000000"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#FFFFFF", "#000000"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#000000", "#FFFF00"}, [2]string{"#FFFFFF", "#000000"}, [2]string{"#FFFF00", "#444444"},
		[2]string{"#CCCCCC", "#333333"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#666666", "#BBBBBB"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#F7FAFC"}, [2]string{"#FFFFFF", "#1A202C"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#FFFFFF", "#1A202C"}, [2]string{"#2D3748", "#E2E8F0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2B6CB0", "#63B3ED"}, [2]string{"#FFFFFF", "#1A202C"}, [2]string{"#EDF2F7", "#2D3748"},
		[2]string{"#E2E8F0", "#4A5568"}, [2]string{"#E2E8F0", "#2D3748"}, [2]string{"#2D3748", "#E2E8F0"},
		[2]string{"#A0AEC0", "#718096"})
)

// ThemeByName looks up a theme by its config name
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme, true
	case "high-contrast":
		return HighContrastTheme, true
	case "minimal":
		return MinimalTheme, true
	default:
		return DefaultTheme, false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// Styles contains all the styled components of the keypad
type Styles struct {
	Theme Theme

	Title        lipgloss.Style
	Display      lipgloss.Style
	DisplayError lipgloss.Style
	Button       lipgloss.Style
	Operator     lipgloss.Style
	Accent       lipgloss.Style
	Focused      lipgloss.Style
	Pressed      lipgloss.Style
	Muted        lipgloss.Style
}

// NewStyles builds the keypad styles for theme. Without color only borders
// and emphasis distinguish the buttons.
func NewStyles(theme Theme, color bool) *Styles {
	display := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(displayWidth).
		Align(lipgloss.Right).
		Bold(true)

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true)

	s := &Styles{
		Theme:        theme,
		Title:        lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Display:      display,
		DisplayError: display,
		Button:       button,
		Operator:     button,
		Accent:       button,
		Focused:      button.BorderStyle(lipgloss.ThickBorder()),
		Pressed:      button.BorderStyle(lipgloss.DoubleBorder()).Reverse(true),
		Muted:        lipgloss.NewStyle(),
	}
	if !color {
		return s
	}

	s.Title = s.Title.Foreground(theme.Title)
	s.Display = s.Display.
		Foreground(theme.DisplayForeground).
		Background(theme.DisplayBackground).
		BorderForeground(theme.Border)
	s.DisplayError = s.Display.Foreground(theme.Error)
	s.Button = s.Button.
		Foreground(theme.ButtonText).
		Background(theme.Button).
		BorderForeground(theme.Border)
	s.Operator = s.Button.Foreground(theme.Operator)
	s.Accent = s.Button.
		Foreground(theme.AccentText).
		Background(theme.Accent).
		BorderForeground(theme.Accent)
	s.Focused = s.Focused.
		Foreground(theme.ButtonText).
		Background(theme.Focused).
		BorderForeground(theme.Operator)
	s.Pressed = s.Pressed.
		Foreground(theme.ButtonText).
		Background(theme.Pressed).
		BorderForeground(theme.Operator).
		Reverse(false)
	s.Muted = s.Muted.Foreground(theme.Muted)

	return s
}

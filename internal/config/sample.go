package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# tcalc configuration
version: "1.0"

ui:
  # Color theme: default, high-contrast, minimal
  theme: default
  # Color output: auto, always, never
  color_mode: auto
  # Show the key help line under the keypad
  show_help: true
  # Press buttons with the mouse
  mouse: true
  # How long a pressed button stays highlighted
  flash_duration: 120ms

logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file. The keypad owns the terminal, so logs are only written to a file.
  file: ""

watch:
  # Reload the theme when this file changes
  enabled: true
`
}

// MinimalSampleConfig returns a configuration file with essential settings only
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: default
`
}

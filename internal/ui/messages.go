package ui

import "github.com/yildizm/tcalc/internal/config"

// flashEndMsg clears the pressed highlight of press number id
type flashEndMsg struct {
	id int
}

// ConfigReloadedMsg carries a configuration reloaded from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a failed configuration reload
type ConfigErrorMsg struct {
	Err error
}

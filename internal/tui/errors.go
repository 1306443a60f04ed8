package tui

import "errors"

var errNoSource = errors.New("tui: no fact source configured")

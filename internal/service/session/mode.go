package session

import (
	"fmt"
	"strings"
)

// Mode selects how history entries are displayed.
type Mode string

const (
	// ModeBrief shows only the result.
	ModeBrief Mode = "brief"
	// ModeVerbose shows the submitted line next to its result.
	ModeVerbose Mode = "verbose"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBrief:
		return ModeBrief, nil
	case ModeVerbose:
		return ModeVerbose, nil
	}
	return "", fmt.Errorf("unknown output mode %q (want brief or verbose)", s)
}

func (m Mode) Toggle() Mode {
	if m == ModeVerbose {
		return ModeBrief
	}
	return ModeVerbose
}

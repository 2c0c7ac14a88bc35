package reporter

import (
	"github.com/fatih/color"
)

// Tag is one of the bracketed markers that start every report line.
type Tag int

const (
	TagBanner Tag = iota
	TagSeparator
	TagRun
	TagOk
	TagFailed
	TagAssert
	TagExpect
	TagUnknown
	TagPassed
)

func (t Tag) String() string {
	switch t {
	case TagBanner:
		return "[==========]"
	case TagSeparator:
		return "[----------]"
	case TagRun:
		return "[ RUN ]"
	case TagOk:
		return "[ OK ]"
	case TagFailed:
		return "[ FAILED ]"
	case TagAssert:
		return "[ ASSERT ]"
	case TagExpect:
		return "[ EXPECT ]"
	case TagUnknown:
		return "[ UNKNOWN ]"
	case TagPassed:
		return "[ PASSED ]"
	default:
		return "[ ??? ]"
	}
}

func (t Tag) color() *color.Color {
	switch t {
	case TagFailed, TagAssert, TagExpect:
		return color.New(color.FgRed)
	case TagUnknown:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// StringColor returns the tag wrapped in its color codes when enabled is
// true, and the plain tag otherwise.
func (t Tag) StringColor(enabled bool) string {
	c := t.color()
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(t.String())
}

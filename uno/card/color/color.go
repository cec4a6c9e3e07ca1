package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
)

// All lists the colors a player may choose, in prompt order.
var All = []Color{Red, Yellow, Green, Blue}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	None:   {name: "none", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

func (c Color) Name() string {
	if s, ok := palette[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Valid reports whether c is one of the four playable colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	s, ok := palette[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return s.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	if string(text) == palette[None].name {
		*c = None
		return nil
	}
	parsed, err := ByName(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var aliases = map[string]Color{
	"r": Red, "red": Red,
	"y": Yellow, "yellow": Yellow,
	"g": Green, "green": Green,
	"b": Blue, "blue": Blue,
}

// ByName resolves a playable color from its name or initial, ignoring case.
func ByName(name string) (Color, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

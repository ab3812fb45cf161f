package gcb

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single line of GCode.
// Command with empty Code is a comment-only line.
type Command struct {
	Code        GCode
	Args        []Arg
	LineComment string
}

// String renders the command. If comments is false, LineComment is skipped.
func (c *Command) String(comments bool) string {
	if c.Code == "" {
		if !comments {
			return ""
		}

		return strings.TrimRight("; "+c.LineComment, " ")
	}

	result := string(c.Code)
	for _, arg := range c.Args {
		result += " " + arg.String()
	}

	if c.LineComment != "" && comments {
		result += fmt.Sprintf(" ; %v", c.LineComment)
	}

	return result
}

// Arg returns value of argument called name.
func (c *Command) Arg(name string) (RelativePos, bool) {
	for _, arg := range c.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}

	return 0, false
}

type Arg struct {
	Name  string
	Value RelativePos
}

func (a Arg) String() string {
	return a.Name + strconv.FormatFloat(float64(a.Value), 'f', -1, 64)
}

func parseArg(s string) (Arg, error) {
	if len(s) <= 1 {
		return Arg{}, fmt.Errorf("%w: %q", ErrInvalidArg, s)
	}

	value, err := strconv.ParseFloat(s[1:], 64)
	if err != nil {
		return Arg{}, fmt.Errorf("%w: %q: %w", ErrInvalidArg, s, err)
	}

	return Arg{Name: strings.ToUpper(s[0:1]), Value: RelativePos(value)}, nil
}

package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/domain/entity"
)

// Parser turns script text into engine commands.
type Parser struct {
	source string
}

// New creates a parser; source names the script in error messages.
func New(source string) *Parser {
	return &Parser{source: source}
}

// Parse reads every statement from r. It stops at the first malformed line
// and returns an *Error locating it.
func (p *Parser) Parse(r io.Reader) ([]Statement, error) {
	var stmts []Statement
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := stripComment(scanner.Text())
		if text == "" {
			continue
		}
		cmd, err := ParseLine(text)
		if err != nil {
			return stmts, &Error{Source: p.source, Line: line, Text: text, Err: err}
		}
		stmts = append(stmts, Statement{Line: line, Text: text, Command: cmd})
	}
	if err := scanner.Err(); err != nil {
		return stmts, fmt.Errorf("read %s: %w", p.source, err)
	}
	return stmts, nil
}

// ParseString parses a whole script held in memory.
func ParseString(source, script string) ([]Statement, error) {
	return New(source).Parse(strings.NewReader(script))
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// ParseLine parses a single command line without comments.
func ParseLine(line string) (engine.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrArguments)
	}
	keyword, args := strings.ToLower(fields[0]), fields[1:]

	switch keyword {
	case "terminal":
		return parseTerminal(args)
	case "split":
		return parseSplit(args)
	case "remove", "close":
		if err := argCount(args, 0, 1); err != nil {
			return nil, err
		}
		return engine.Remove{Pane: paneArg(args, 0)}, nil
	case "resize":
		return parseResize(args)
	case "focus":
		return parseFocus(args)
	case "focus-next", "focus-prev":
		return parseFocusNext(keyword, args)
	case "focus-pane":
		if err := argCount(args, 1, 1); err != nil {
			return nil, err
		}
		return engine.FocusPane{Pane: entity.PaneID(args[0])}, nil
	case "click":
		return parseClick(args)
	case "swap":
		if err := argCount(args, 1, 2); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return engine.Swap{B: entity.PaneID(args[0])}, nil
		}
		return engine.Swap{A: entity.PaneID(args[0]), B: entity.PaneID(args[1])}, nil
	case "zoom":
		if err := argCount(args, 0, 0); err != nil {
			return nil, err
		}
		return engine.ToggleZoom{}, nil
	case "view-new":
		return engine.NewView{Title: strings.Join(args, " ")}, nil
	case "view-close":
		if err := argCount(args, 0, 1); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return engine.CloseView{}, nil
		}
		return engine.CloseView{View: entity.ViewID(args[0])}, nil
	case "view-switch":
		if err := argCount(args, 0, 1); err != nil {
			return nil, err
		}
		step := 1
		if len(args) == 1 {
			var err error
			if step, err = parseInt("step", args[0]); err != nil {
				return nil, err
			}
		}
		return engine.SwitchView{Step: step}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
}

func paneArg(args []string, i int) entity.PaneID {
	if i < len(args) {
		return entity.PaneID(args[i])
	}
	return ""
}

// terminal W H
func parseTerminal(args []string) (engine.Command, error) {
	if err := argCount(args, 2, 2); err != nil {
		return nil, err
	}
	w, err := parseSize("width", args[0])
	if err != nil {
		return nil, err
	}
	h, err := parseSize("height", args[1])
	if err != nil {
		return nil, err
	}
	return engine.TerminalResize{Width: w, Height: h}, nil
}

// split [pane] horizontal|vertical [before|after] [fixed=N] [as=ID]
func parseSplit(args []string) (engine.Command, error) {
	if err := argCount(args, 1, 5); err != nil {
		return nil, err
	}
	var cmd engine.Split
	if !isSplitDirection(args[0]) || (len(args) > 1 && isSplitDirection(args[1])) {
		cmd.Pane = entity.PaneID(args[0])
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing split direction", ErrArguments)
	}
	dir, err := parseSplitDirection(args[0])
	if err != nil {
		return nil, err
	}
	cmd.Direction = dir

	for _, arg := range args[1:] {
		switch strings.ToLower(arg) {
		case "before":
			cmd.Placement = entity.PlaceBefore
			continue
		case "after":
			cmd.Placement = entity.PlaceAfter
			continue
		}
		key, value, ok := option(arg)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q", ErrArguments, arg)
		}
		switch key {
		case "fixed":
			if cmd.Fixed, err = parseSize("fixed", value); err != nil {
				return nil, err
			}
		case "as":
			if value == "" {
				return nil, fmt.Errorf("%w: empty pane id", ErrArguments)
			}
			cmd.NewPane = entity.PaneID(value)
		default:
			return nil, fmt.Errorf("%w: unknown option %q", ErrArguments, key)
		}
	}
	return cmd, nil
}

// resize [pane] DIR DELTA [COUNT]
func parseResize(args []string) (engine.Command, error) {
	if err := argCount(args, 2, 4); err != nil {
		return nil, err
	}
	var cmd engine.Resize
	if !isDirection(args[0]) || (len(args) > 2 && isDirection(args[1])) {
		cmd.Pane = entity.PaneID(args[0])
		args = args[1:]
	}
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: want [pane] direction delta [count]", ErrArguments)
	}
	dir, err := parseDirection(args[0])
	if err != nil {
		return nil, err
	}
	delta, err := parseInt("delta", args[1])
	if err != nil {
		return nil, err
	}
	cmd.Direction, cmd.Delta, cmd.Count = dir, delta, 1
	if len(args) == 3 {
		if cmd.Count, err = parseCount(args[2]); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// focus DIR [COUNT]
func parseFocus(args []string) (engine.Command, error) {
	if err := argCount(args, 1, 2); err != nil {
		return nil, err
	}
	dir, err := parseDirection(args[0])
	if err != nil {
		return nil, err
	}
	count := 1
	if len(args) == 2 {
		if count, err = parseCount(args[1]); err != nil {
			return nil, err
		}
	}
	return engine.FocusDirection{Direction: dir, Count: count}, nil
}

// focus-next [STEP], focus-prev [STEP]
func parseFocusNext(keyword string, args []string) (engine.Command, error) {
	if err := argCount(args, 0, 1); err != nil {
		return nil, err
	}
	step := 1
	if len(args) == 1 {
		var err error
		if step, err = parseInt("step", args[0]); err != nil {
			return nil, err
		}
	}
	if keyword == "focus-prev" {
		step = -step
	}
	return engine.FocusNext{Step: step}, nil
}

// click X Y
func parseClick(args []string) (engine.Command, error) {
	if err := argCount(args, 2, 2); err != nil {
		return nil, err
	}
	x, err := parseSize("x", args[0])
	if err != nil {
		return nil, err
	}
	y, err := parseSize("y", args[1])
	if err != nil {
		return nil, err
	}
	return engine.FocusAt{X: x, Y: y}, nil
}

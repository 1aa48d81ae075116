package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/panemux/internal/domain/entity"
)

var (
	// ErrUnknownCommand is returned for an unrecognized keyword.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArguments is returned for a wrong number or kind of arguments.
	ErrArguments = errors.New("invalid arguments")
)

func argCount(args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		if minArgs == maxArgs {
			return fmt.Errorf("%w: want %d, got %d", ErrArguments, minArgs, len(args))
		}
		return fmt.Errorf("%w: want %d to %d, got %d", ErrArguments, minArgs, maxArgs, len(args))
	}
	return nil
}

// parseInt parses a signed integer argument.
func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrArguments, name, s)
	}
	return n, nil
}

// parseCount parses a repetition count, which must be positive.
func parseCount(s string) (int, error) {
	n, err := parseInt("count", s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: count must be at least 1, got %d", ErrArguments, n)
	}
	return n, nil
}

// parseSize parses a non-negative cell count.
func parseSize(name, s string) (int, error) {
	n, err := parseInt(name, s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %d", ErrArguments, name, n)
	}
	return n, nil
}

func parseDirection(s string) (entity.Direction, error) {
	d, err := entity.ParseDirection(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrArguments, err)
	}
	return d, nil
}

func parseSplitDirection(s string) (entity.SplitDirection, error) {
	d, err := entity.ParseSplitDirection(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrArguments, err)
	}
	return d, nil
}

func isDirection(s string) bool {
	_, err := entity.ParseDirection(strings.ToLower(s))
	return err == nil
}

func isSplitDirection(s string) bool {
	_, err := entity.ParseSplitDirection(strings.ToLower(s))
	return err == nil
}

// option splits "key=value".
func option(arg string) (key, value string, ok bool) {
	return strings.Cut(arg, "=")
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrConfigExists is returned when writing defaults over an existing file.
var ErrConfigExists = errors.New("config file already exists")

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// EncodeTOML renders cfg as TOML with sections in alphabetical order.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to path with deterministic
// section ordering.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration to the manager's config
// file. An existing file is kept unless force is set.
func (m *Manager) WriteDefault(force bool) (string, error) {
	path := filepath.Join(m.dir, configFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return path, err
	}
	return path, nil
}

// sortTOMLSections reorders top-level TOML tables alphabetically. Keys
// before the first table stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		preamble []string
		sections []section
	)
	for line := range strings.SplitSeq(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, section{header: match[1], lines: []string{strings.TrimLeft(line, " \t")}})
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].lines = append(sections[n-1].lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}

	slices.SortStableFunc(sections, func(a, b section) int {
		return strings.Compare(a.header, b.header)
	})

	var out strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) != "" {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	for _, sec := range sections {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		body := sec.lines
		for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
			body = body[:len(body)-1]
		}
		for _, line := range body {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

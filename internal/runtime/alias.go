// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Placeholder is the token replaced by one argument during alias expansion.
const Placeholder = "%s"

// Alias split modes.
const (
	// SplitNaive splits the expanded line on every single space. Quotes are
	// not honored and consecutive spaces yield empty arguments.
	SplitNaive SplitMode = "naive"
	// SplitShell splits the expanded line with POSIX shell quoting rules and
	// expands $VARS from the process environment. Command substitution is
	// rejected.
	SplitShell SplitMode = "shell"
)

type (
	// SplitMode names an alias line splitter.
	SplitMode string

	// Splitter turns an expanded alias line into command words.
	Splitter func(line string) ([]string, error)

	// AliasExpansion is the result of expanding an alias template.
	AliasExpansion struct {
		// Line is the template with placeholders filled.
		Line string
		// Program is the first word of Line.
		Program string
		// Args are the remaining words of Line followed by leftover arguments.
		Args []string
		// Consumed is the number of arguments used by placeholders.
		Consumed int
	}
)

// Splitter returns the splitter for the mode.
func (m SplitMode) Splitter() (Splitter, error) {
	switch m {
	case SplitNaive, "":
		return splitNaive, nil
	case SplitShell:
		return splitShell, nil
	default:
		return nil, &UnknownSplitterError{Value: string(m)}
	}
}

// String returns the mode name.
func (m SplitMode) String() string { return string(m) }

func splitNaive(line string) ([]string, error) {
	return strings.Split(line, " "), nil
}

func splitShell(line string) ([]string, error) {
	words, err := shell.Fields(line, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to split alias %q: %w", line, err)
	}
	if len(words) == 0 {
		return []string{""}, nil
	}
	return words, nil
}

// ParseAlias validates the raw contents of an alias file and returns the
// single template line. One trailing line terminator is accepted.
func ParseAlias(path string, contents []byte) (string, error) {
	line := string(contents)
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	if strings.ContainsAny(line, "\r\n") {
		return "", &MultiLineAliasError{Path: path}
	}
	return line, nil
}

// ExpandAlias fills each %s in template with the next argument, splits the
// result into words and appends the arguments no placeholder consumed.
//
// "echo %s and %s" with [a b c] expands to program "echo" and
// args [a and b c].
func ExpandAlias(template string, args []string, split Splitter) (*AliasExpansion, error) {
	pieces := strings.Split(template, Placeholder)
	placeholders := len(pieces) - 1
	if placeholders > len(args) {
		return nil, &MissingAliasArgumentError{
			Alias:        template,
			Placeholders: placeholders,
			Supplied:     len(args),
		}
	}

	var b strings.Builder
	b.WriteString(pieces[0])
	for i, piece := range pieces[1:] {
		b.WriteString(args[i])
		b.WriteString(piece)
	}
	line := b.String()

	if split == nil {
		split = splitNaive
	}
	words, err := split(line)
	if err != nil {
		return nil, err
	}

	expanded := &AliasExpansion{
		Line:     line,
		Program:  words[0],
		Args:     make([]string, 0, len(words)-1+len(args)-placeholders),
		Consumed: placeholders,
	}
	expanded.Args = append(expanded.Args, words[1:]...)
	expanded.Args = append(expanded.Args, args[placeholders:]...)
	return expanded, nil
}

package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/storekit/internal/messages"
)

const (
	// ProviderName is the wrapper component the layout is nested in.
	ProviderName = "Providers"
	// ImportLine imports ProviderName relative to the app directory.
	ImportLine = `import { Providers } from "./redux/provider";`

	innerIndent = "    "
	tagIndent   = "  "
)

// Patch failures. All of them leave the layout untouched.
var (
	ErrNoReturnBlock    = errors.New(messages.LayoutNoReturnBlock)
	ErrAmbiguousReturn  = errors.New(messages.LayoutAmbiguousReturn)
	ErrUnbalancedReturn = errors.New(messages.LayoutUnbalancedReturn)
)

var (
	returnOpenPattern  = regexp.MustCompile(`\breturn\s*\(`)
	functionEndPattern = regexp.MustCompile(`^\s*;?\s*\}`)
	directivePattern   = regexp.MustCompile(`^\s*(?:"use [a-z ]+"|'use [a-z ]+');?\s*$`)
)

// Patch nests the markup returned by the layout's single `return ( ... )`
// block inside <Providers> and imports Providers at the top of the file.
//
// The block must be the only `return (` outside comments and string literals,
// and its closing paren must be followed by an optional semicolon and the
// closing brace of the function. Anything else is rejected rather than guessed at.
func Patch(content string) (string, error) {
	masked := maskNonCode(content)
	matches := returnOpenPattern.FindAllStringIndex(masked, -1)
	switch {
	case len(matches) == 0:
		return "", ErrNoReturnBlock
	case len(matches) > 1:
		return "", fmt.Errorf(messages.LayoutAmbiguousReturnFmt, ErrAmbiguousReturn, len(matches))
	}
	start := matches[0][0]
	open := matches[0][1] - 1
	closing := matchParen(masked, open)
	if closing < 0 || !functionEndPattern.MatchString(masked[closing+1:]) {
		return "", ErrUnbalancedReturn
	}

	indent := lineIndent(content, start)
	wrapped := wrapReturn(content[open+1:closing], indent)
	patched := content[:start] + wrapped + content[closing+1:]
	return addImport(patched), nil
}

// wrapReturn renders `return ( <Providers> inner </Providers> )` with inner
// dedented and re-indented one level inside the wrapper tags.
func wrapReturn(inner string, indent string) string {
	var b strings.Builder
	b.WriteString("return (\n")
	b.WriteString(indent + tagIndent + "<" + ProviderName + ">\n")
	for _, line := range dedent(inner) {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(indent + innerIndent + line + "\n")
	}
	b.WriteString(indent + tagIndent + "</" + ProviderName + ">\n")
	b.WriteString(indent + ")")
	return b.String()
}

// dedent splits inner into lines, drops leading and trailing blank lines, and
// removes the indentation common to all non-blank lines. Text that shares a line
// with the opening paren does not count toward the common indentation.
func dedent(inner string) []string {
	lines := strings.Split(inner, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	sameLine := len(lines) > 0 && strings.TrimSpace(lines[0]) != ""
	if sameLine {
		lines[0] = strings.TrimLeft(lines[0], " \t")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
		sameLine = false
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	common := -1
	for i, line := range lines {
		if line == "" || (i == 0 && sameLine) {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || width < common {
			common = width
		}
	}
	if common <= 0 {
		return lines
	}
	for i, line := range lines {
		if line == "" || (i == 0 && sameLine) {
			continue
		}
		lines[i] = line[common:]
	}
	return lines
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(content string, offset int) string {
	lineStart := strings.LastIndex(content[:offset], "\n") + 1
	prefix := content[lineStart:offset]
	return prefix[:len(prefix)-len(strings.TrimLeft(prefix, " \t"))]
}

// addImport inserts ImportLine once, after any leading "use ..." directives.
func addImport(content string) string {
	if strings.Contains(content, ImportLine) {
		return content
	}
	lines := strings.SplitAfter(content, "\n")
	insertAt := 0
	for i, line := range lines {
		if !directivePattern.MatchString(strings.TrimRight(line, "\r\n")) {
			break
		}
		insertAt = i + 1
	}

	head := strings.Join(lines[:insertAt], "")
	rest := strings.Join(lines[insertAt:], "")

	var b strings.Builder
	if head != "" {
		b.WriteString(head)
		if !strings.HasSuffix(head, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
		rest = strings.TrimLeft(rest, "\r\n")
	}
	b.WriteString(ImportLine)
	b.WriteString("\n")
	if rest != "" && !strings.HasPrefix(rest, "import ") && !strings.HasPrefix(rest, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(rest)
	return b.String()
}

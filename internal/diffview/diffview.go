// Package diffview renders capped unified diffs for dry-run previews.
package diffview

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/storekit/internal/messages"
)

const (
	// DefaultMaxLines is the default maximum number of diff lines shown per file.
	DefaultMaxLines = 40
	// lineCapFlagName is the CLI flag name used to raise the per-file cap.
	lineCapFlagName = "--diff-lines"
)

// Normalize returns maxLines, or DefaultMaxLines when it is not positive.
func Normalize(maxLines int) int {
	if maxLines <= 0 {
		return DefaultMaxLines
	}
	return maxLines
}

// Render returns the unified diff from `from` to `to`, capped at maxLines.
// The bool reports whether lines were dropped. Identical inputs render as "".
func Render(fromName string, toName string, from string, to string, maxLines int) (string, bool) {
	limit := Normalize(maxLines)
	diff := udiff.Unified(fromName, toName, from, to)
	lines := splitLines(diff)
	if len(lines) <= limit {
		return withTrailingNewline(strings.Join(lines, "\n")), false
	}
	kept := append(lines[:limit:limit], fmt.Sprintf(messages.DiffTruncatedFmt, limit, lineCapFlagName))
	return withTrailingNewline(strings.Join(kept, "\n")), true
}

func splitLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func withTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}

package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the number of columns a tab is rendered as in reports.
const TabstopWidth = 4

// Report renders err as a diagnostic for the input src named name. Parse
// errors are shown with the offending source line and a caret under the
// column where the error was detected; other errors are rendered as text.
func Report(name string, src []byte, err error) string {
	if name == "" {
		name = "<input>"
	}

	var perr *Error
	if !errors.As(err, &perr) {
		return fmt.Sprintf("%s: %v\n", name, err)
	}

	offset := min(max(perr.Pos.Offset, 0), len(src))
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}

	line := displayText(string(src[start:end]))
	column := uniseg.StringWidth(displayText(string(src[start:offset])))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %v\n", name, perr.Pos.Line, perr.Pos.Col, perr.Err)
	sb.WriteString("  ")
	sb.WriteString(line)
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", column))
	sb.WriteString("^\n")
	return sb.String()
}

// displayText expands tabs and drops carriage returns so the line can be
// measured and printed on a terminal.
func displayText(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabstopWidth))
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

// defaultFallbackTermWidth is used when no terminal size can be detected
// (CI, redirected output) so tables are not truncated to nothing.
const defaultFallbackTermWidth = 120

var termGetSize = term.GetSize

// readInput returns the contents of the file argument, or stdin when no
// argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// detectTerminalWidth returns the best-effort terminal width by probing
// stdout, stderr, and stdin, then falling back to $COLUMNS.
func detectTerminalWidth() int {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, _, err := termGetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return defaultFallbackTermWidth
}

// fitSpecs pins every column to a fixed width so the rendered table fits
// within termWidth. The budget left after borders is split across columns
// with Distribute; current natural widths narrower than their share are
// kept, and the spare budget is redistributed over the wider columns.
func fitSpecs(specs []textgrid.LayoutSpec, widths []int, termWidth int) []textgrid.LayoutSpec {
	n := len(widths)
	if n == 0 {
		return specs
	}
	// Border overhead: one outer rule each side plus one junction per gap.
	budget := termWidth - (n + 1)
	if budget < n {
		budget = n
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= budget {
		return specs
	}

	fitted := make([]int, n)
	remaining := budget
	over := make([]int, 0, n)
	for i, share := range textgrid.Distribute(budget, n) {
		if widths[i] <= share {
			fitted[i] = widths[i]
			remaining -= widths[i]
		} else {
			over = append(over, i)
		}
	}
	for j, share := range textgrid.Distribute(remaining, len(over)) {
		fitted[over[j]] = share
	}

	out := make([]textgrid.LayoutSpec, len(specs))
	copy(out, specs)
	for i := range out {
		if i < n {
			out[i].Length = textgrid.Fixed(fitted[i])
		}
	}
	return out
}

// parseVerticalPosition maps the --valign flag to a fill policy.
func parseVerticalPosition(name string) (textgrid.VerticalPosition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "top":
		return textgrid.VStart, nil
	case "center", "centre":
		return textgrid.VCenter, nil
	case "bottom":
		return textgrid.VEnd, nil
	}
	return textgrid.VStart, fmt.Errorf("unknown vertical alignment %q (want top, center, or bottom)", name)
}

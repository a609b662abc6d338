package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/codegraph/pkg/risk"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, low risk
	colorYellow = lipgloss.Color("220") // Amber - warnings, medium risk
	colorOrange = lipgloss.Color("208") // Orange - high risk
	colorRed    = lipgloss.Color("167") // Soft red - errors, critical risk
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	categoryStyles = map[risk.Category]lipgloss.Style{
		risk.Low:      lipgloss.NewStyle().Foreground(colorGreen),
		risk.Medium:   lipgloss.NewStyle().Foreground(colorYellow),
		risk.High:     lipgloss.NewStyle().Foreground(colorOrange),
		risk.Critical: lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	}
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// PrintError prints an error message. main uses it for the final error.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}

// =============================================================================
// Domain Output
// =============================================================================

// renderCategory colors a risk category name.
func renderCategory(c risk.Category) string {
	style, ok := categoryStyles[c]
	if !ok {
		return c.String()
	}
	return style.Render(c.String())
}

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, nodes, edges, unreached int) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodes),
		fmt.Sprintf("%d edges", edges),
	}
	if unreached > 0 {
		parts = append(parts, fmt.Sprintf("%d unreached", unreached))
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

// printLevel prints one depth and its ordered node IDs.
func printLevel(w io.Writer, depth int, ids []string) {
	label := StyleNumber.Render(fmt.Sprintf("%+4d", depth))
	fmt.Fprintln(w, label+"  "+StyleValue.Render(strings.Join(ids, "  ")))
}

// printList prints a labeled, comma separated list, or "none".
func printList(w io.Writer, key string, ids []string) {
	value := strings.Join(ids, ", ")
	if len(ids) == 0 {
		value = StyleDim.Render("none")
	}
	printKeyValue(w, key, value)
}

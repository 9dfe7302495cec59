package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/prebuild/pkg/pipeline"
	"github.com/matzehuels/prebuild/pkg/settings"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleMissing = lipgloss.NewStyle().Foreground(colorRed).Strikethrough(true)
	styleEnabled = lipgloss.NewStyle().Foreground(colorGreen)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Bundle Panel
// =============================================================================

// renderPanel draws the bundle settings pane: one line per registered
// bundle followed by the import toggle.
func renderPanel(items []settings.Item, useImports bool) string {
	lines := []string{StyleTitle.Render("Bundles")}
	if len(items) == 0 {
		lines = append(lines, StyleDim.Render("no bundles registered"))
	}
	for _, it := range items {
		label := StyleValue.Render(it.Label())
		if it.Missing {
			label = styleMissing.Render(it.Label())
		}
		line := label
		if it.Version != "" {
			line += " " + StyleNumber.Render(it.Version)
		}
		line += " " + StyleDim.Render(it.TypeID)
		lines = append(lines, line)
	}

	toggle := StyleDim.Render("off")
	if useImports {
		toggle = styleEnabled.Render("on")
	}
	lines = append(lines, "", StyleDim.Render("use imports: ")+toggle)

	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// printResult prints the summary of a pre-compile run.
func printResult(res *pipeline.Result) {
	printSuccess("Pre-compiled %s for %s",
		StyleNumber.Render(fmt.Sprintf("%d bundles", len(res.Bundles))),
		StyleHighlight.Render(res.Env.String()))
	printKeyValue("Run", res.RunID)
	if len(res.Bundles) > 0 {
		printKeyValue("Bundles", strings.Join(res.Bundles, ", "))
	}
	if len(res.Restored) > 0 {
		printKeyValue("Restored", fmt.Sprintf("%d sources", len(res.Restored)))
	}
	if res.Imports != nil {
		printKeyValue("Imports", fmt.Sprintf("%d rewritten, %d unchanged", len(res.Imports.Changed), res.Imports.Cached))
		for _, skip := range res.Imports.Skipped {
			printWarning("skipped %s: %v", skip.Path, skip.Err)
		}
	}
	printKeyValue("Took", res.Stats.Total().String())
}

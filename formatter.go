package salience

import (
	"fmt"
	"strings"
)

// FormatReport formats a report for display.
// At most top sections are listed; top <= 0 lists all of them.
func FormatReport(r *Report, top int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s", r.Source)
	if r.Format != "" {
		fmt.Fprintf(&sb, " (%s", r.Format)
		if r.Language != "" {
			fmt.Fprintf(&sb, ", %s", r.Language)
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")

	if r.Failed() {
		fmt.Fprintf(&sb, "error: %s\n", r.Error)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Brands: %s\n", joinOrNone(r.Brands))
	fmt.Fprintf(&sb, "Keywords: %s\n", joinOrNone(r.Keywords))

	sections := r.Sections
	if top > 0 && len(sections) > top {
		sections = sections[:top]
	}
	sb.WriteString("Top sections:\n")
	if len(sections) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, s := range sections {
		fmt.Fprintf(&sb, "  %d. [%d] %s\n", i+1, s.Score, s.Text)
	}

	return sb.String()
}

// FormatReports formats reports separated by blank lines.
func FormatReports(reports []*Report, top int) string {
	if len(reports) == 0 {
		return ""
	}

	parts := make([]string, 0, len(reports))
	for _, r := range reports {
		parts = append(parts, FormatReport(r, top))
	}

	return strings.Join(parts, "\n")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

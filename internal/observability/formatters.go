// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/truthtalent/cv-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateRecord outputs a human-readable summary of an extracted
// candidate record.
func (p *Printer) PrintCandidateRecord(record *types.CandidateRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Personal.Name))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", record.Personal.Email))
	if record.Personal.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", record.Personal.Phone))
	}
	if record.Personal.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", record.Personal.Location))
	}
	sb.WriteString(fmt.Sprintf("Level:      %s (%d years)\n", record.Experience.Level, record.Experience.Years))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", record.ConfidenceScore))

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.Experience.Positions) > 0 {
		sb.WriteString("\nPositions:\n")
		count := min(len(record.Experience.Positions), 3)
		for i := 0; i < count; i++ {
			pos := record.Experience.Positions[i]
			line := pos.Title
			if pos.Company != "" {
				line += " @ " + pos.Company
			}
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(record.Experience.Positions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience.Positions)-3))
		}
	}

	if record.Education.Degree != "" {
		sb.WriteString(fmt.Sprintf("\nEducation:  %s", record.Education.Degree))
		if record.Education.Institution != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", record.Education.Institution))
		}
		sb.WriteString("\n")
	}

	if len(record.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("\nLanguages:  %s\n", strings.Join(record.Languages, ", ")))
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillsByCategory outputs the categorized skill breakdown.
func (p *Printer) PrintSkillsByCategory(byCategory map[string][]string) {
	if len(byCategory) == 0 {
		return
	}

	var sb strings.Builder
	for category, skills := range byCategory {
		line := strings.Join(skills, ", ")
		if len(line) > 40 {
			line = line[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-12s %s\n", category+":", line))
	}

	p.printBox("SKILLS BY CATEGORY", strings.TrimSuffix(sb.String(), "\n"))
}

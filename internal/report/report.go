// Package report derives user-facing text from an analysis result: the
// bullet/paragraph formatting used by the results view and the downloadable
// plain-text report.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"resume-analyzer-desktop/internal/models"
)

const (
	// Filename is the fixed name for the downloadable report.
	Filename = "resume-analysis-report.txt"

	// NoSuggestions is shown when a free-text section is empty.
	NoSuggestions = "No suggestions available."

	// NotProvided is shown for missing identity fields.
	NotProvided = "Not provided"
)

var bulletMarker = regexp.MustCompile(`^[•\-\*]\s*`)

// TextKind distinguishes how a formatted free-text section renders.
type TextKind int

const (
	// TextParagraph renders as a single unmodified paragraph.
	TextParagraph TextKind = iota
	// TextList renders as an unordered list of cleaned lines.
	TextList
)

// FormattedText is the render-ready form of a free-text section.
type FormattedText struct {
	Kind      TextKind
	Paragraph string
	Items     []string
}

// FormatText prepares free text for rendering. Empty text yields the
// no-suggestions placeholder. Text containing a bullet (•) or hyphen marker is
// split into lines, blank lines dropped, and one leading bullet/hyphen/asterisk
// marker stripped from each line; lines left empty by stripping are dropped.
// Anything else passes through as one paragraph.
func FormatText(text string) FormattedText {
	if text == "" {
		return FormattedText{Kind: TextParagraph, Paragraph: NoSuggestions}
	}

	if strings.Contains(text, "•") || strings.Contains(text, "-") {
		var items []string
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			clean := strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
			if clean != "" {
				items = append(items, clean)
			}
		}
		return FormattedText{Kind: TextList, Items: items}
	}

	return FormattedText{Kind: TextParagraph, Paragraph: text}
}

// RatingLabel renders a 0-10 rating as "<n>/10".
func RatingLabel(rating int) string {
	return fmt.Sprintf("%d/10", rating)
}

// Build produces the plain-text analysis report. Skills appear one per
// hyphen-bulleted line, the free-text sections verbatim (placeholder when
// absent), and the generation date in the local short date format.
func Build(result models.AnalysisResult, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("RESUME ANALYSIS REPORT\n")
	b.WriteString("======================\n\n")

	b.WriteString("Personal Information:\n")
	b.WriteString("- Name: " + orPlaceholder(result.Name, NotProvided) + "\n")
	b.WriteString("- Email: " + orPlaceholder(result.Email, NotProvided) + "\n\n")

	b.WriteString("Resume Rating: " + RatingLabel(result.ResumeRating) + "\n\n")

	b.WriteString("Core Skills:\n")
	writeSkillLines(&b, result.CoreSkills)
	b.WriteString("\n")

	b.WriteString("Soft Skills:\n")
	writeSkillLines(&b, result.SoftSkills)
	b.WriteString("\n")

	b.WriteString("Areas for Improvement:\n")
	b.WriteString(orPlaceholder(result.ImprovementAreas, NoSuggestions) + "\n\n")

	b.WriteString("Upskill Suggestions:\n")
	b.WriteString(orPlaceholder(result.UpskillSuggestions, NoSuggestions) + "\n\n")

	b.WriteString("Generated on: " + generatedAt.Format("1/2/2006") + "\n")

	return b.String()
}

func writeSkillLines(b *strings.Builder, skills []string) {
	for _, skill := range skills {
		b.WriteString("- " + skill + "\n")
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

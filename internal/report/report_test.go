package report

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"resume-analyzer-desktop/internal/models"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected FormattedText
	}{
		{
			name:     "Empty text yields placeholder",
			text:     "",
			expected: FormattedText{Kind: TextParagraph, Paragraph: NoSuggestions},
		},
		{
			name:     "Plain prose stays a paragraph",
			text:     "Add more detail to your work history.",
			expected: FormattedText{Kind: TextParagraph, Paragraph: "Add more detail to your work history."},
		},
		{
			name: "Bullet list",
			text: "• A\n• B",
			expected: FormattedText{
				Kind:  TextList,
				Items: []string{"A", "B"},
			},
		},
		{
			name: "Hyphen list with blank lines",
			text: "- Learn Docker\n\n- Learn Kubernetes\n   \n- Practice system design",
			expected: FormattedText{
				Kind:  TextList,
				Items: []string{"Learn Docker", "Learn Kubernetes", "Practice system design"},
			},
		},
		{
			name: "Asterisk markers stripped when a hyphen is present",
			text: "* Improve formatting\n- Quantify achievements",
			expected: FormattedText{
				Kind:  TextList,
				Items: []string{"Improve formatting", "Quantify achievements"},
			},
		},
		{
			name: "Lines emptied by stripping are dropped",
			text: "• A\n•\n• B",
			expected: FormattedText{
				Kind:  TextList,
				Items: []string{"A", "B"},
			},
		},
		{
			name: "Hyphen inside a word triggers list mode",
			text: "Consider a part-time course",
			expected: FormattedText{
				Kind:  TextList,
				Items: []string{"Consider a part-time course"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatText(tt.text)
			if got.Kind != tt.expected.Kind {
				t.Fatalf("FormatText(%q).Kind = %v, want %v", tt.text, got.Kind, tt.expected.Kind)
			}
			if got.Paragraph != tt.expected.Paragraph {
				t.Errorf("Paragraph = %q, want %q", got.Paragraph, tt.expected.Paragraph)
			}
			if !reflect.DeepEqual(got.Items, tt.expected.Items) {
				t.Errorf("Items = %v, want %v", got.Items, tt.expected.Items)
			}
		})
	}
}

func TestRatingLabel(t *testing.T) {
	if got := RatingLabel(7); got != "7/10" {
		t.Errorf("RatingLabel(7) = %q, want '7/10'", got)
	}
	if got := RatingLabel(0); got != "0/10" {
		t.Errorf("RatingLabel(0) = %q, want '0/10'", got)
	}
}

func TestBuildFullResult(t *testing.T) {
	result := models.AnalysisResult{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		CoreSkills:         []string{"Go", "SQL"},
		SoftSkills:         []string{"Communication"},
		ResumeRating:       7,
		ImprovementAreas:   "• Quantify achievements\n• Trim to one page",
		UpskillSuggestions: "Learn cloud fundamentals.",
	}

	generatedAt := time.Date(2025, 6, 3, 15, 4, 5, 0, time.UTC)
	text := Build(result, generatedAt)

	wants := []string{
		"RESUME ANALYSIS REPORT",
		"======================",
		"- Name: Jane Doe",
		"- Email: jane@example.com",
		"Resume Rating: 7/10",
		"Core Skills:\n- Go\n- SQL",
		"Soft Skills:\n- Communication",
		"Areas for Improvement:\n• Quantify achievements\n• Trim to one page",
		"Upskill Suggestions:\nLearn cloud fundamentals.",
		"Generated on: 6/3/2025",
	}

	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("Report missing %q:\n%s", want, text)
		}
	}
}

func TestBuildDefaultsUsePlaceholders(t *testing.T) {
	text := Build(models.DefaultAnalysisResult(), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	if !strings.Contains(text, "- Name: Not provided") {
		t.Error("Expected 'Not provided' placeholder for name")
	}
	if !strings.Contains(text, "- Email: Not provided") {
		t.Error("Expected 'Not provided' placeholder for email")
	}
	if !strings.Contains(text, "Resume Rating: 0/10") {
		t.Error("Expected 0/10 rating for the default result")
	}
	if strings.Count(text, NoSuggestions) != 2 {
		t.Errorf("Expected both free-text sections to fall back to %q:\n%s", NoSuggestions, text)
	}
	if !strings.Contains(text, "Generated on: 1/2/2025") {
		t.Error("Expected short local date format")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	result := models.AnalysisResult{Name: "Jane", CoreSkills: []string{"Go"}}
	at := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	if Build(result, at) != Build(result, at) {
		t.Error("Build must be deterministic for identical input")
	}
}

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"resume-analyzer-desktop/internal/models"
	"resume-analyzer-desktop/internal/report"
	"resume-analyzer-desktop/internal/store"
)

// ExportToExcel generates an Excel workbook with the current analysis and the
// session history.
func ExportToExcel(result models.AnalysisResult, history []store.Entry, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	// Clean the path for cross-platform compatibility (Windows paths)
	outputPath = filepath.Clean(outputPath)

	analysisSheet := "Analysis"
	historySheet := "History"

	f.SetSheetName("Sheet1", analysisSheet)
	f.NewSheet(historySheet)

	if err := createAnalysisSheet(f, analysisSheet, result); err != nil {
		return fmt.Errorf("failed to create analysis sheet: %w", err)
	}

	if err := createHistorySheet(f, historySheet, history); err != nil {
		return fmt.Errorf("failed to create history sheet: %w", err)
	}

	// Try to save the file directly
	if err := f.SaveAs(outputPath); err != nil {
		// If direct save fails, try buffer write fallback
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}

		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}

	return nil
}

// createAnalysisSheet lays out the current analysis result.
func createAnalysisSheet(f *excelize.File, sheetName string, result models.AnalysisResult) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 60)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Resume Analysis")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	fields := []struct {
		label string
		value string
	}{
		{"Name:", orPlaceholder(result.Name)},
		{"Email:", orPlaceholder(result.Email)},
		{"Rating:", report.RatingLabel(result.ResumeRating)},
		{"Core Skills:", strings.Join(result.CoreSkills, ", ")},
		{"Soft Skills:", strings.Join(result.SoftSkills, ", ")},
		{"Areas for Improvement:", result.ImprovementAreas},
		{"Upskill Suggestions:", result.UpskillSuggestions},
	}

	for _, field := range fields {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), field.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), field.value)
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Generated:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), time.Now().Format("2006-01-02 15:04"))

	return nil
}

// createHistorySheet lists every analysis received this session, newest first.
func createHistorySheet(f *excelize.File, sheetName string, history []store.Entry) error {
	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "C", 25)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 20)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	headers := []string{"ID", "Name", "Email", "Rating", "Received"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, entry := range history {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), orPlaceholder(entry.Result.Name))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), orPlaceholder(entry.Result.Email))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), report.RatingLabel(entry.Result.ResumeRating))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.ReceivedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func orPlaceholder(value string) string {
	if value == "" {
		return report.NotProvided
	}
	return value
}

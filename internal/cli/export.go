package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chiahsuan/wordbank/internal/bank"
	"github.com/chiahsuan/wordbank/internal/pdf"
	"github.com/chiahsuan/wordbank/internal/word"
)

// RenderStudySheet renders the saved words as a printable markdown sheet:
// a summary table followed by the example sentences per word.
func RenderStudySheet(records []word.Record) string {
	var builder strings.Builder
	builder.WriteString("# Word Bank Study Sheet\n\n")
	builder.WriteString(fmt.Sprintf("%d words saved.\n\n", len(records)))

	builder.WriteString("| # | Term | Phonetic | Translation |\n")
	builder.WriteString("|---|------|----------|-------------|\n")
	for i, record := range records {
		builder.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			i+1, record.Term, record.Phonetic, record.Translation))
	}

	for _, record := range records {
		if len(record.Examples) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("\n## %s\n\n", record.Term))
		for i, example := range record.Examples {
			builder.WriteString(fmt.Sprintf("- %s\n", example))
			if i < len(record.TranslatedExamples) {
				builder.WriteString(fmt.Sprintf("  - %s\n", record.TranslatedExamples[i]))
			}
		}
	}
	return builder.String()
}

// ExportStudySheet writes the study sheet markdown under outputDir and
// converts it to PDF, returning the PDF path.
func ExportStudySheet(bankStore *bank.Store, outputDir string) (string, error) {
	records := bankStore.List()
	if len(records) == 0 {
		return "", fmt.Errorf("the word bank is empty, nothing to export")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}

	markdownPath := filepath.Join(outputDir, "word_bank_study_sheet.md")
	if err := os.WriteFile(markdownPath, []byte(RenderStudySheet(records)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return pdfPath, nil
}

package services

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// Exporter renders a completed analysis into a downloadable document.
// Only the interface is part of the core contract.
type Exporter interface {
	Export(w io.Writer, sub *models.Submission) error
	Filename(sub *models.Submission) string
}

const reportTemplate = `AIWriteCheck Analysis Report
============================

Title:        {{.Title}}
Submitted:    {{.CreatedAt.Format "2006-01-02 15:04"}}
{{- if .UpdatedAt}}
Revised:      {{.UpdatedAt.Format "2006-01-02 15:04"}}
{{- end}}

AI Influence:  {{printf "%.0f" .Analysis.AIInfluence}}%
Quality Score: {{printf "%.1f" .Analysis.QualityScore}}/10
Readability:   {{printf "%.0f" .Analysis.Readability.Score}}/100 ({{.Analysis.Readability.Level}})

Improvement Suggestions
-----------------------
{{- range .Analysis.Suggestions}}
- [{{.Category}}] {{.Text}}
{{- end}}

Writing Strengths
-----------------
{{- range .Analysis.Strengths}}
- [{{.Category}}] {{.Text}}
{{- end}}
`

type reportExporter struct {
	tmpl *template.Template
}

func NewReportExporter() Exporter {
	return &reportExporter{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

func (e *reportExporter) Export(w io.Writer, sub *models.Submission) error {
	if err := e.tmpl.Execute(w, sub); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func (e *reportExporter) Filename(sub *models.Submission) string {
	name := strings.ToLower(strings.TrimSpace(sub.Title))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	if name == "" {
		name = "analysis"
	}
	return name + "-report.txt"
}

package tui

import (
	"fmt"
	"strings"

	"contentguard/gauge"
	"contentguard/models"

	"github.com/charmbracelet/lipgloss"
)

const gaugeWidth = 20

// RenderReport renders the report panels: gauge, quick stats, issues and
// recommendations. Also used by the one-shot CLI.
func RenderReport(styles Styles, report *models.AnalysisReport) string {
	g := gauge.New(report.RiskScore)
	levelStyle := lipgloss.NewStyle().Bold(true).Foreground(g.Palette().Term)

	gaugeBlock := lipgloss.JoinVertical(lipgloss.Center,
		levelStyle.Render(g.Bar(gaugeWidth)),
		levelStyle.Render(fmt.Sprintf("%d", g.Score))+styles.Label.Render(" / 100"),
		levelStyle.Render(g.Label()),
	)

	stats := lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Tone")+"        "+styles.Value.Render(report.Tone),
		styles.Label.Render("Plagiarism")+"  "+styles.Value.Render(report.PlagiarismRisk),
	)

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel.Render(gaugeBlock),
		" ",
		styles.Panel.Render(stats),
	))
	sb.WriteString("\n")

	sb.WriteString(styles.SectionTitle.Render("Compliance Issues"))
	sb.WriteString("\n")
	for _, issue := range report.Issues {
		sb.WriteString(styles.Issue.Render("→ ") + issue + "\n")
	}

	sb.WriteString(styles.SectionTitle.Render("Recommendations"))
	sb.WriteString("\n")
	for _, rec := range report.Recommendations {
		sb.WriteString(styles.Recommend.Render("✓ ") + rec + "\n")
	}
	return sb.String()
}

func RenderError(styles Styles, message string) string {
	return styles.ErrorPanel.Render(styles.ErrorTitle.Render("Error") + "\n" + message)
}

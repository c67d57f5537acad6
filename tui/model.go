// Package tui is the terminal front-end: a single screen with a text area,
// an analyze trigger, and the error or report panels.
package tui

import (
	"context"
	"strings"

	"contentguard/models"
	"contentguard/services"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// analysisDoneMsg carries the outcome of the single outstanding call.
type analysisDoneMsg struct {
	report *models.AnalysisReport
	err    error
}

type Model struct {
	ctx      context.Context
	analyzer services.Analyzer
	session  *services.Submission
	logger   *zap.Logger

	textarea textarea.Model
	spinner  spinner.Model
	styles   Styles

	width  int
	height int
}

// NewModel builds the screen. ctx bounds every analysis started from it.
func NewModel(ctx context.Context, analyzer services.Analyzer, logger *zap.Logger) Model {
	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = "Paste blog content, article, or any text you want to analyze..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(10)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		ctx:      ctx,
		analyzer: analyzer,
		session:  services.NewSubmission(""),
		logger:   logger,
		textarea: ta,
		spinner:  sp,
		styles:   styles,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 4 {
			m.textarea.SetWidth(msg.Width - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		}
		// the text area is read-only while loading
		if m.session.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.session.SetContent(m.textarea.Value())
		return m, cmd

	case spinner.TickMsg:
		if !m.session.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.session.Finish(msg.report, msg.err)
		if msg.err != nil {
			m.logger.Warn("analysis failed", zap.Error(msg.err))
		}
		return m, m.textarea.Focus()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit is the trigger. It does nothing while disabled.
func (m Model) submit() (tea.Model, tea.Cmd) {
	content, err := m.session.Begin()
	if err != nil {
		return m, nil
	}
	m.textarea.Blur()
	m.logger.Debug("submitting", zap.Int("bytes", len(content)))
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(content))
}

func (m Model) analyzeCmd(content string) tea.Cmd {
	ctx, analyzer := m.ctx, m.analyzer
	return func() tea.Msg {
		report, err := analyzer.Analyze(ctx, content)
		return analysisDoneMsg{report: report, err: err}
	}
}

func (m Model) View() string {
	st := m.session.Snapshot()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("ContentGuard AI"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Analyze and review your content with advanced AI"))
	sb.WriteString("\n\n")
	sb.WriteString(m.textarea.View())
	sb.WriteString("\n\n")

	switch {
	case st.Loading:
		sb.WriteString(m.styles.ButtonOff.Render(m.spinner.View() + " Analyzing..."))
	case st.CanSubmit():
		sb.WriteString(m.styles.Button.Render("Analyze Content (ctrl+s)"))
	default:
		sb.WriteString(m.styles.ButtonOff.Render("Analyze Content"))
	}
	sb.WriteString("\n\n")

	if st.Error != "" {
		sb.WriteString(RenderError(m.styles, st.Error))
		sb.WriteString("\n")
	}
	if st.Report != nil {
		sb.WriteString(RenderReport(m.styles, st.Report))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(
		humanize.Bytes(uint64(len(st.Content))) + " • " +
			humanize.Comma(int64(len(strings.Fields(st.Content)))) + " words • ctrl+s analyze • esc quit",
	))
	return sb.String()
}

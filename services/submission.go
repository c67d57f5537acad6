package services

import (
	"context"
	"strings"
	"sync"

	"contentguard/models"
)

// State is a point-in-time copy of a Submission for rendering.
// At most one of Report and Error is set.
type State struct {
	Content string
	Loading bool
	Error   string
	Report  *models.AnalysisReport
}

// CanSubmit reports whether the submit trigger is enabled.
func (s State) CanSubmit() bool {
	return !s.Loading && strings.TrimSpace(s.Content) != ""
}

// Submission is the state behind one analysis form: the text being edited,
// whether a call is outstanding, and the outcome of the last call.
type Submission struct {
	mu    sync.Mutex
	state State
}

func NewSubmission(content string) *Submission {
	return &Submission{state: State{Content: content}}
}

// SetContent replaces the input text. Edits are refused while a call is
// outstanding.
func (s *Submission) SetContent(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading {
		return false
	}
	s.state.Content = content
	return true
}

func (s *Submission) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CanSubmit()
}

// Begin moves the form into the loading state, clearing the previous outcome,
// and returns the content to send.
func (s *Submission) Begin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading {
		return "", ErrSubmissionInFlight
	}
	if strings.TrimSpace(s.state.Content) == "" {
		return "", ErrEmptyContent
	}
	s.state.Loading = true
	s.state.Error = ""
	s.state.Report = nil
	return s.state.Content, nil
}

// Finish records the outcome of the call started by Begin and clears loading.
func (s *Submission) Finish(report *models.AnalysisReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Report = nil
		s.state.Error = ErrorMessage(err)
		return
	}
	s.state.Error = ""
	s.state.Report = report
}

// Submit runs one full submission against analyzer. Begin errors are returned
// without touching the recorded outcome; analyzer errors are recorded and
// returned.
func (s *Submission) Submit(ctx context.Context, analyzer Analyzer) (err error) {
	content, err := s.Begin()
	if err != nil {
		return err
	}

	var report *models.AnalysisReport
	defer func() { s.Finish(report, err) }()

	report, err = analyzer.Analyze(ctx, content)
	return err
}

func (s *Submission) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.Report != nil {
		r := *st.Report
		st.Report = &r
	}
	return st
}

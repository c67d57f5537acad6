package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contentguard/models"
	"contentguard/services"
	"contentguard/views"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedAnalyzer blocks every call until release is closed.
type gatedAnalyzer struct {
	release chan struct{}
	report  *models.AnalysisReport
	err     error
	calls   chan string
}

func newGatedAnalyzer(report *models.AnalysisReport, err error) *gatedAnalyzer {
	return &gatedAnalyzer{
		release: make(chan struct{}),
		report:  report,
		err:     err,
		calls:   make(chan string, 8),
	}
}

func (g *gatedAnalyzer) Analyze(ctx context.Context, content string) (*models.AnalysisReport, error) {
	g.calls <- content
	select {
	case <-g.release:
		return g.report, g.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func dialLive(t *testing.T, analyzer services.Analyzer) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := views.Load()
	require.NoError(t, err)
	h := NewLiveHandler(analyzer, tmpl, nil, zap.NewNop())

	router := gin.New()
	router.GET("/ws", h.ServeWS)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) models.LiveFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame models.LiveFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestLive_SubmitResult(t *testing.T) {
	analyzer := newGatedAnalyzer(&models.AnalysisReport{
		RiskScore:       85,
		Tone:            "aggressive",
		PlagiarismRisk:  "high",
		Issues:          []string{"a"},
		Recommendations: []string{"b"},
	}, nil)
	conn := dialLive(t, analyzer)

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: models.FrameSubmit, Content: "text"}))

	state := readFrame(t, conn)
	assert.Equal(t, models.FrameState, state.Type)
	assert.True(t, state.Loading)
	assert.Equal(t, "text", <-analyzer.calls)

	close(analyzer.release)
	result := readFrame(t, conn)
	require.Equal(t, models.FrameResult, result.Type)
	assert.Contains(t, result.HTML, "HIGH RISK")
	assert.Contains(t, result.HTML, ">85</div>")
	assert.Contains(t, result.HTML, "aggressive")
	require.NotNil(t, result.Report)
	assert.Equal(t, 85, result.Report.RiskScore)
}

func TestLive_RejectsOverlappingSubmit(t *testing.T) {
	analyzer := newGatedAnalyzer(&models.AnalysisReport{RiskScore: 10}, nil)
	conn := dialLive(t, analyzer)

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: models.FrameSubmit, Content: "first"}))
	require.Equal(t, models.FrameState, readFrame(t, conn).Type)
	<-analyzer.calls

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: models.FrameSubmit, Content: "second"}))
	rejected := readFrame(t, conn)
	assert.Equal(t, models.FrameError, rejected.Type)
	assert.Equal(t, "An analysis is already in progress", rejected.Error)

	close(analyzer.release)
	result := readFrame(t, conn)
	assert.Equal(t, models.FrameResult, result.Type)
	assert.Contains(t, result.HTML, "LOW RISK")
	assert.Empty(t, analyzer.calls, "second submit must not reach the analyzer")
}

func TestLive_BlankContent(t *testing.T) {
	analyzer := newGatedAnalyzer(nil, nil)
	conn := dialLive(t, analyzer)

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: models.FrameSubmit, Content: " \t "}))

	frame := readFrame(t, conn)
	assert.Equal(t, models.FrameError, frame.Type)
	assert.Equal(t, "Content field is required", frame.Error)
	assert.Empty(t, analyzer.calls)
}

func TestLive_ServerError(t *testing.T) {
	analyzer := newGatedAnalyzer(nil, &services.ServerError{StatusCode: 400, Message: "bad input"})
	close(analyzer.release)
	conn := dialLive(t, analyzer)

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: models.FrameSubmit, Content: "text"}))
	require.Equal(t, models.FrameState, readFrame(t, conn).Type)

	frame := readFrame(t, conn)
	assert.Equal(t, models.FrameError, frame.Type)
	assert.Equal(t, "bad input", frame.Error)
	assert.Empty(t, frame.HTML)
}

func TestLive_InvalidFrames(t *testing.T) {
	conn := dialLive(t, newGatedAnalyzer(nil, nil))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	assert.Equal(t, "Invalid message", readFrame(t, conn).Error)

	require.NoError(t, conn.WriteJSON(models.LiveFrame{Type: "ping"}))
	assert.Equal(t, "Unknown message type", readFrame(t, conn).Error)
}

func TestCheckOrigin(t *testing.T) {
	check := checkOrigin([]string{"http://localhost:5173"})

	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "http://guard.example/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	assert.True(t, check(req("")))
	assert.True(t, check(req("http://guard.example")))
	assert.True(t, check(req("http://localhost:5173")))
	assert.False(t, check(req("http://evil.example")))
}

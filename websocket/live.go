package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"contentguard/models"
	"contentguard/services"
	"contentguard/views"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// LiveHandler lets the page submit content over a websocket and re-render in
// place. Each connection owns one Submission, so a connection can have at most
// one analysis outstanding.
type LiveHandler struct {
	analyzer services.Analyzer
	tmpl     *template.Template
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewLiveHandler(analyzer services.Analyzer, tmpl *template.Template, allowOrigins []string, logger *zap.Logger) *LiveHandler {
	return &LiveHandler{
		analyzer: analyzer,
		tmpl:     tmpl,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin(allowOrigins)},
	}
}

// checkOrigin accepts same-host pages, configured origins, and clients that send no Origin.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err == nil && u.Host == r.Host {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}

// client is one live connection. Writes come from the reader loop and from the
// analysis goroutine, so they go through mu.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) send(frame models.LiveFrame) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(frame)
}

// ServeWS upgrades the request and serves submissions until the peer disconnects.
func (h *LiveHandler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	cl := &client{id: uuid.NewString(), conn: conn}
	logger := h.logger.With(zap.String("conn_id", cl.id))
	logger.Debug("live client connected")

	// Outstanding analyses are abandoned when the peer goes away.
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		logger.Debug("live client disconnected")
	}()

	session := services.NewSubmission("")
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var frame models.LiveFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			_ = cl.send(models.LiveFrame{Type: models.FrameError, Error: "Invalid message"})
			continue
		}
		if frame.Type != models.FrameSubmit {
			_ = cl.send(models.LiveFrame{Type: models.FrameError, Error: "Unknown message type"})
			continue
		}

		content, err := h.begin(session, frame.Content)
		if err != nil {
			_ = cl.send(models.LiveFrame{Type: models.FrameError, Error: rejectionMessage(err)})
			continue
		}
		if err := cl.send(models.LiveFrame{Type: models.FrameState, Loading: true}); err != nil {
			session.Finish(nil, err)
			return
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			h.analyze(ctx, cl, session, content, logger)
		}()
	}
}

func (h *LiveHandler) begin(session *services.Submission, content string) (string, error) {
	if !session.SetContent(content) {
		return "", services.ErrSubmissionInFlight
	}
	return session.Begin()
}

func (h *LiveHandler) analyze(ctx context.Context, cl *client, session *services.Submission, content string, logger *zap.Logger) {
	report, err := h.analyzer.Analyze(ctx, content)
	session.Finish(report, err)

	if err != nil {
		logger.Warn("analysis failed", zap.Error(err))
		_ = cl.send(models.LiveFrame{Type: models.FrameError, Error: services.ErrorMessage(err)})
		return
	}

	fragment, err := views.RenderReport(h.tmpl, report)
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		_ = cl.send(models.LiveFrame{Type: models.FrameError, Error: services.FallbackServerMessage})
		return
	}
	_ = cl.send(models.LiveFrame{Type: models.FrameResult, HTML: fragment, Report: report})
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrEmptyContent):
		return "Content field is required"
	case errors.Is(err, services.ErrSubmissionInFlight):
		return "An analysis is already in progress"
	default:
		return services.ErrorMessage(err)
	}
}

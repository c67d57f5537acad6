package models

// Frame types exchanged over the live submission socket.
const (
	FrameSubmit = "submit"
	FrameState  = "state"
	FrameResult = "result"
	FrameError  = "error"
)

// LiveFrame is a single websocket message in either direction. HTML carries the
// rendered report fragment so the page never re-implements rendering.
type LiveFrame struct {
	Type    string          `json:"type"`
	Content string          `json:"content,omitempty"`
	Loading bool            `json:"loading,omitempty"`
	HTML    string          `json:"html,omitempty"`
	Error   string          `json:"error,omitempty"`
	Report  *AnalysisReport `json:"report,omitempty"`
}

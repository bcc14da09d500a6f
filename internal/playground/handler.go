// File: handler.go
// Title: Playground WebSocket Handler
// Description: Runs programs received over a websocket. Every message is
//              evaluated in a fresh interpreter with a timeout and a source
//              size limit; the reply carries the printed lines and status.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package playground

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml"
	"github.com/msto63/sbml/foundation/utils/stringx"
	"github.com/msto63/sbml/internal/journal"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // playground is meant for local use
	},
}

// Request is a program submitted by the client
type Request struct {
	Source string `json:"source"`
}

// Response reports the outcome of one run
type Response struct {
	RunID  string         `json:"run_id"`
	Output []string       `json:"output"`
	Status journal.Status `json:"status"`
	Error  string         `json:"error,omitempty"`
}

// Handler upgrades connections and runs submitted programs
type Handler struct {
	config  Config
	journal journal.Store
	logger  *sbmllog.Logger
}

// NewHandler creates a websocket handler. store may be nil.
func NewHandler(cfg Config, store journal.Store, logger *sbmllog.Logger) *Handler {
	return &Handler{
		config:  cfg,
		journal: store,
		logger:  logger,
	}
}

// ServeHTTP handles the websocket upgrade and the message loop
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("websocket upgrade failed", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(int64(h.config.MaxSourceBytes) + 1024)
	h.logger.Debug("connection established", sbmllog.Fields{"remote": conn.RemoteAddr().String()})

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WarnWithErr("websocket read failed", err)
			}
			return
		}

		resp := h.Run(r.Context(), req.Source)
		if err := conn.WriteJSON(resp); err != nil {
			h.logger.WarnWithErr("websocket write failed", err)
			return
		}
	}
}

// Run evaluates source in a fresh interpreter and builds the response
func (h *Handler) Run(ctx context.Context, source string) Response {
	runID := uuid.NewString()
	logger := h.logger.WithRunID(runID)
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	var out bytes.Buffer
	interp := sbml.New(sbml.Options{
		Logger:         logger,
		Output:         &out,
		MaxIterations:  h.config.MaxIterations,
		MaxSourceBytes: h.config.MaxSourceBytes,
	})
	runErr := interp.Run(ctx, source)

	lines := stringx.Lines(out.String())
	resp := Response{
		RunID:  runID,
		Output: lines,
		Status: journal.StatusFromError(runErr),
		Error:  sbml.Diagnostic(runErr),
	}
	logger.Info("playground run", sbmllog.Fields{"status": string(resp.Status), "lines": len(lines)})

	if h.journal != nil {
		entry := journal.NewEntry(runID, "playground", source, started, len(lines), runErr)
		if err := h.journal.Record(context.Background(), entry); err != nil {
			logger.WarnWithErr("journal record failed", err)
		}
	}
	return resp
}

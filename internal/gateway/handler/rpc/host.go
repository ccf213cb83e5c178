package rpc

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"sonarassist/internal/gateway/service/host"
	"sonarassist/internal/gateway/service/prompt"
	"sonarassist/internal/gateway/service/workspace"

	"github.com/gorilla/websocket"
)

// HostHandler serves the editor host channel: prompts go out, selections and
// workspace-folder state come back.
type HostHandler struct {
	hub     *host.Hub
	prompts *prompt.Service
	folders *workspace.Registry
}

func NewHostHandler(hub *host.Hub, prompts *prompt.Service, folders *workspace.Registry) *HostHandler {
	return &HostHandler{hub: hub, prompts: prompts, folders: folders}
}

const (
	hostWSWriteWait = 10 * time.Second
	hostWSPongWait  = 60 * time.Second
	hostWSPingEvery = (hostWSPongWait * 9) / 10
)

var hostWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type hostWSInbound struct {
	Type      string             `json:"type"`
	PromptID  string             `json:"promptId,omitempty"`
	Selection string             `json:"selection,omitempty"`
	Folders   []workspace.Folder `json:"folders,omitempty"`
}

func (h *HostHandler) HandleHostWS(w http.ResponseWriter, r *http.Request) {
	conn, err := hostWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(hostWSPongWait)); err != nil {
		log.Printf("host ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(hostWSPongWait))
	})

	writeCh := make(chan host.Frame, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(hostWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(hostWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(hostWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	frames, detach := h.hub.Attach(32)
	defer detach()

	pushHostWS(writeCh, host.Frame{Type: "attached"})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-frames:
				if !ok {
					return
				}
				pushHostWS(writeCh, f)
			}
		}
	}()

	for {
		var in hostWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		switch strings.ToLower(strings.TrimSpace(in.Type)) {
		case "":
			pushHostWS(writeCh, host.Frame{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "type is required",
			})
		case "ping":
			pushHostWS(writeCh, host.Frame{Type: "pong"})
		case "sync_folders":
			h.folders.Sync(in.Folders)
			pushHostWS(writeCh, host.Frame{Type: "sync_ack"})
		case "prompt_response":
			if !h.prompts.Submit(in.PromptID, in.Selection) {
				pushHostWS(writeCh, host.Frame{
					Type:     "error",
					Code:     "not_found",
					PromptID: strings.TrimSpace(in.PromptID),
					Message:  "no pending prompt",
				})
			}
		case "prompt_dismissed":
			// Dismissing an already-resolved prompt is not an error.
			h.prompts.Dismiss(in.PromptID)
		default:
			pushHostWS(writeCh, host.Frame{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "unknown message type",
			})
		}
	}
}

func pushHostWS(writeCh chan host.Frame, out host.Frame) {
	if writeCh == nil {
		return
	}
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}

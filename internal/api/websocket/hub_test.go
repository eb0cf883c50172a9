package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
	"github.com/chynybekuuludastan/adstudio/internal/session"
)

func waitForClients(t *testing.T, h *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for h.ClientCount(sessionID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients for %s, got %d", want, sessionID, h.ClientCount(sessionID))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNotifyReachesOnlyOwnSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	mine := &Client{sessionID: "s1", send: make(chan []byte, 4)}
	other := &Client{sessionID: "s2", send: make(chan []byte, 4)}
	h.Register(mine)
	h.Register(other)
	waitForClients(t, h, "s1", 1)

	h.Notify(session.Event{SessionID: "s1", Panel: session.PanelUpload, State: lifecycle.StateSuccess, Version: 2})

	select {
	case raw := <-mine.send:
		var msg struct {
			Type string        `json:"type"`
			Data session.Event `json:"data"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if msg.Type != TypePanelState || msg.Data.Panel != session.PanelUpload || msg.Data.State != lifecycle.StateSuccess {
			t.Errorf("unexpected message %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("no message delivered")
	}

	select {
	case raw := <-other.send:
		t.Errorf("other session received %s", raw)
	default:
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	c := &Client{sessionID: "s1", send: make(chan []byte, 1)}
	h.Register(c)
	waitForClients(t, h, "s1", 1)

	h.Unregister(c)
	waitForClients(t, h, "s1", 0)

	if _, ok := <-c.send; ok {
		t.Errorf("send channel should be closed")
	}
}

package spectate

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

func startHub(t *testing.T, interval time.Duration) (*Hub, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(log.New(io.Discard), interval)
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	return conn
}

func waitViewers(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Viewers() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d viewers, have %d", want, hub.Viewers())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

type frame struct {
	State string `json:"state"`
	Score int    `json:"score"`
}

func TestHubBroadcastsSnapshots(t *testing.T) {
	hub, url := startHub(t, 0)

	a := dial(t, url)
	defer a.Close()
	b := dial(t, url)
	defer b.Close()
	waitViewers(t, hub, 2)

	hub.Publish(frame{State: "playing", Score: 40})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got frame
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON() failed: %v", err)
		}
		if got.State != "playing" || got.Score != 40 {
			t.Errorf("Unexpected frame %+v", got)
		}
	}
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub, url := startHub(t, 0)

	conn := dial(t, url)
	waitViewers(t, hub, 1)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitViewers(t, hub, 0)
}

func TestHubPublishWithoutViewers(t *testing.T) {
	hub := NewHub(log.New(io.Discard), 0)

	// No Run loop and no viewers: must return immediately.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(frame{Score: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}

func TestHubRateLimit(t *testing.T) {
	hub, url := startHub(t, time.Hour)

	conn := dial(t, url)
	defer conn.Close()
	waitViewers(t, hub, 1)

	hub.Publish(frame{Score: 1})
	hub.Publish(frame{Score: 2})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}
	var got frame
	json.Unmarshal(data, &got)
	if got.Score != 1 {
		t.Errorf("Expected first frame, got %+v", got)
	}

	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Second frame should have been rate limited")
	}
}

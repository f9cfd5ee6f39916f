package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketPushesRevisionEvents(t *testing.T) {
	router, st, _ := newTestRouter(t)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the handler a moment to register its watcher.
	time.Sleep(50 * time.Millisecond)
	st.AddSkill()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event struct {
		Type     string `json:"type"`
		Revision uint64 `json:"revision"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.Type != "revision" {
		t.Fatalf("type = %q, want revision", event.Type)
	}
	if event.Revision == 0 {
		t.Fatal("revision should be positive after a commit")
	}
}

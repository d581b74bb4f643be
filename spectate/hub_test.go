package spectate

import (
	"bytes"
	"log"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/game"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + Path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return ws
}

func TestHub_BroadcastsMsgpackSnapshot(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	a, b := dial(t, srv), dial(t, srv)
	defer a.Close()
	defer b.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	want := game.Snapshot{
		Phase:     engine.PhasePlaying,
		Frame:     42,
		Score:     130,
		HP:        4,
		GunLevel:  2,
		Shield:    true,
		Elapsed:   3 * time.Second,
		Remaining: 297 * time.Second,
		Width:     600,
		Height:    800,
		Entities: []game.EntityView{
			{ID: 1, Kind: core.KindPlayer, X: 276, Y: 712, Bounds: core.Rect{X: 10, Y: 8, W: 28, H: 32}, HP: 4, LifeFraction: 1},
			{ID: 7, Kind: core.KindEnemy, Name: "SEGFAULT", X: 100, Y: -30, Angle: 0.5, HP: 3, LifeFraction: 0.9},
		},
	}
	if err := hub.Publish(want); err != nil {
		t.Fatalf("publish: %v", err)
	}

	for _, ws := range []*websocket.Conn{a, b} {
		ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		kind, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.BinaryMessage {
			t.Errorf("message type = %d, want binary", kind)
		}
		var got game.Snapshot
		if err := msgpack.Unmarshal(data, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("decoded = %+v, want %+v", got, want)
		}
	}
}

func TestHub_DisconnectRemovesViewer(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	ws := dial(t, srv)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })
	ws.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if err := hub.Publish(map[string]int{"frame": 1}); err != nil {
		t.Errorf("publish with no viewers: %v", err)
	}
}

func TestHub_SlowViewerDropped(t *testing.T) {
	hub := NewHub()
	c := &connection{send: make(chan []byte, 1)}
	hub.clients[c] = struct{}{}

	hub.Publish(1)
	if hub.ClientCount() != 1 {
		t.Fatal("viewer dropped before its buffer filled")
	}
	hub.Publish(2)
	if hub.ClientCount() != 0 {
		t.Error("full viewer not dropped")
	}
	if _, ok := <-c.send; !ok {
		t.Error("queued message lost")
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel not closed after drop")
	}
}

func TestDue(t *testing.T) {
	n := 0
	for f := int64(1); f <= 10; f++ {
		if Due(f) {
			n++
		}
	}
	if n != 5 {
		t.Errorf("due frames = %d, want 5", n)
	}
}

func TestHub_StartLogsAddressOnce(t *testing.T) {
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})

	hub := NewHub()
	addr, err := hub.Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer hub.Close()

	want := "ws://" + addr.String() + Path
	if n := strings.Count(buf.String(), want); n != 1 {
		t.Errorf("address logged %d times, want 1: %q", n, buf.String())
	}
}

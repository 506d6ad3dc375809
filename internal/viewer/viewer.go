// Package viewer publishes session snapshots over HTTP and WebSocket so the
// run can be watched from a browser while the robot explores.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/micromouse/internal/maze"
	"github.com/vancomm/micromouse/internal/middleware"
	"github.com/vancomm/micromouse/internal/render"
)

var Log = logrus.New()

const clientBuffer = 16

// Event is one displayed state. Kind is "costs", "walls" or "trace".
type Event struct {
	Kind     string        `json:"kind"`
	Snapshot maze.Snapshot `json:"snapshot"`
}

type client struct {
	send chan Event
}

// Hub is a [maze.Display] that keeps the latest event and fans every event
// out to connected websocket clients. Slow clients miss events rather than
// stall the robot.
type Hub struct {
	mu      sync.Mutex
	last    *Event
	clients map[*client]struct{}

	upgrader websocket.Upgrader
	decoder  *schema.Decoder
}

func NewHub() *Hub {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		decoder: decoder,
	}
}

func (h *Hub) ShowCosts(s *maze.Session) { h.publish(Event{Kind: "costs", Snapshot: s.Snapshot()}) }
func (h *Hub) ShowWalls(s *maze.Session) { h.publish(Event{Kind: "walls", Snapshot: s.Snapshot()}) }
func (h *Hub) ShowTrace(s *maze.Session) { h.publish(Event{Kind: "trace", Snapshot: s.Snapshot()}) }

func (h *Hub) publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &e
	for c := range h.clients {
		select {
		case c.send <- e:
		default:
			Log.WithField("kind", e.Kind).Warn("client too slow, dropping event")
		}
	}
}

// Last returns the most recent event, if any.
func (h *Hub) Last() (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return Event{}, false
	}
	return *h.last, true
}

func (h *Hub) register() *client {
	c := &client{send: make(chan Event, clientBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		c.send <- *h.last
	}
	h.clients[c] = struct{}{}
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshot", h.handleSnapshot)
	mux.HandleFunc("GET /connect", h.handleConnect)
	return middleware.Wrap(mux, middleware.Logging(Log), middleware.Cors())
}

type snapshotQuery struct {
	Format string `schema:"format"`
}

func (h *Hub) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var q snapshotQuery
	if err := h.decoder.Decode(&q, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e, ok := h.Last()
	if !ok {
		http.Error(w, "no snapshot yet", http.StatusNotFound)
		return
	}
	switch q.Format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(e); err != nil {
			Log.WithError(err).Error("unable to send snapshot")
		}
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		var text string
		switch e.Kind {
		case "walls":
			text = render.Walls(e.Snapshot)
		case "trace":
			text = render.Trace(e.Snapshot)
		default:
			text = render.Costs(e.Snapshot)
		}
		w.Write([]byte(text))
	default:
		http.Error(w, "unknown format "+q.Format, http.StatusBadRequest)
	}
}

func (h *Hub) handleConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	c := h.register()
	defer h.unregister(c)

	// The reader only notices the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case e := <-c.send:
			if err := conn.WriteJSON(e); err != nil {
				Log.WithError(err).Debug("unable to write event")
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// Serve runs the viewer on addr until ctx is done.
func Serve(ctx context.Context, addr string, h *Hub) error {
	server := &http.Server{
		Addr:    addr,
		Handler: h.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	Log.WithField("addr", addr).Info("viewer listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(sCtx)
}

package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hatchdotlol/geosignup/pkg/flow"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var writeWait = 5 * time.Second

type eventConn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v any) error
}

// subscriber serializes writes to one connection.
type subscriber struct {
	mu   sync.Mutex
	conn eventConn
}

func (s *subscriber) send(t flow.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(t)
}

// Hub fans navigation transitions out to the websocket clients watching a
// session.
type Hub struct {
	lock sync.RWMutex
	subs map[string]map[eventConn]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[eventConn]*subscriber)}
}

func (h *Hub) Register(session string, conn eventConn) *subscriber {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.subs[session] == nil {
		h.subs[session] = make(map[eventConn]*subscriber)
	}
	sub := &subscriber{conn: conn}
	h.subs[session][conn] = sub
	return sub
}

func (h *Hub) Unregister(session string, conn eventConn) {
	h.lock.Lock()
	defer h.lock.Unlock()
	delete(h.subs[session], conn)
	if len(h.subs[session]) == 0 {
		delete(h.subs, session)
	}
}

// Publish writes outside the hub lock, so a slow socket only holds up its own
// session's publisher, and never for longer than writeWait.
func (h *Hub) Publish(t flow.Transition) {
	h.lock.RLock()
	subs := make([]*subscriber, 0, len(h.subs[t.Session]))
	for _, sub := range h.subs[t.Session] {
		subs = append(subs, sub)
	}
	h.lock.RUnlock()

	for _, sub := range subs {
		if err := sub.send(t); err != nil {
			slog.Debug("Dropping event for closed socket", "session", t.Session, "err", err)
		}
	}
}

// events streams the session's transitions. The first message carries the
// current screen with an empty "from".
func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	sess := session(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	sub := s.Events.Register(sess.Id, conn)
	defer s.Events.Unregister(sess.Id, conn)

	if err := sub.send(flow.Transition{Session: sess.Id, To: sess.Screen()}); err != nil {
		return
	}

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil || messageType == websocket.CloseMessage {
			break
		}
	}
}

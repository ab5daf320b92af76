package handlers

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/courseos/backend/internal/models"
	"github.com/courseos/backend/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	liveWriteWait    = 10 * time.Second
	livePongWait     = 60 * time.Second
	livePingPeriod   = (livePongWait * 9) / 10
	liveMaxFrameSize = 4096
)

// Live search frame actions sent by the client
const (
	liveActionQuery = "query"
	liveActionClear = "clear"
)

// SearchLookup is the interface that wraps the one-shot catalog search
type SearchLookup interface {
	// Method Search looks "query" up in modules and lessons
	//
	// "ctx" is the context for the request.
	// "query" is the raw search text; a blank query yields empty results.
	//
	// Returns the hits grouped by type. Failed lookups leave their group empty.
	Search(ctx context.Context, query string) models.SearchResults
}

// liveSearchRequest is a client frame of a live search session
type liveSearchRequest struct {
	Action string `json:"action"`
	Query  string `json:"query"`
}

// liveSearchFrame is a server frame of a live search session
type liveSearchFrame struct {
	Type  string        `json:"type"`
	State *search.State `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

// SearchHandler handles HTTP requests for catalog search
type SearchHandler struct {
	BaseHandler
	lookup   SearchLookup
	cfg      search.EngineConfig
	upgrader websocket.Upgrader
}

// NewSearchHandler creates a new search handler.
// "allowedOrigins" restricts live search connections the same way CORS does; "*" allows any origin.
func NewSearchHandler(lookup SearchLookup, cfg search.EngineConfig, allowedOrigins []string, logger *zap.Logger) *SearchHandler {
	allowAll := slices.Contains(allowedOrigins, "*")
	return &SearchHandler{
		lookup:      lookup,
		cfg:         cfg,
		BaseHandler: BaseHandler{Logger: logger},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// RegisterRoutes registers all search handler routes
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Route("/search", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/live", h.LiveSearch)
	})
}

// Search handles GET /search
// @Summary Search the catalog
// @Description Search module and lesson titles and descriptions (case-insensitive substring).
// @Description Modules and lessons are looked up concurrently; a failed lookup leaves its group empty.
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} models.SearchResults "Search results"
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.lookup.Search(r.Context(), r.URL.Query().Get("q")))
}

// LiveSearch handles GET /search/live
// @Summary Live search session
// @Description Upgrades to a WebSocket. The client sends {"action":"query","query":"..."} on every keystroke
// @Description and {"action":"clear"} to reset. The server debounces queries and pushes {"type":"state"} frames.
// @Description Responses to superseded queries are never pushed.
// @Tags search
// @Success 101 "Switching Protocols"
// @Router /search/live [get]
func (h *SearchHandler) LiveSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.Logger.Warn("failed to upgrade live search connection", zap.Error(err))
		return
	}

	session := newLiveSession(conn, h.Logger)
	engine := search.NewEngine(h.lookup, h.cfg, h.Logger)
	unsubscribe := engine.Subscribe(func(state search.State) {
		session.send(liveSearchFrame{Type: "state", State: &state})
	})
	defer func() {
		unsubscribe()
		engine.Close()
		session.close()
	}()

	initial := engine.State()
	session.send(liveSearchFrame{Type: "state", State: &initial})

	go session.keepAlive()

	for {
		var req liveSearchRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Warn("live search connection closed unexpectedly", zap.Error(err))
			}
			return
		}

		switch req.Action {
		case liveActionQuery:
			engine.SetQuery(req.Query)
		case liveActionClear:
			engine.ClearSearch()
		default:
			session.send(liveSearchFrame{Type: "error", Error: "unknown action"})
		}
	}
}

// liveSession serializes writes to one WebSocket connection
type liveSession struct {
	conn   *websocket.Conn
	logger *zap.Logger
	mu     sync.Mutex
	done   chan struct{}
	once   sync.Once
}

func newLiveSession(conn *websocket.Conn, logger *zap.Logger) *liveSession {
	conn.SetReadLimit(liveMaxFrameSize)
	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	return &liveSession{
		conn:   conn,
		logger: logger,
		done:   make(chan struct{}),
	}
}

func (s *liveSession) send(frame liveSearchFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := s.conn.WriteJSON(frame); err != nil {
		s.logger.Debug("failed to write live search frame", zap.Error(err))
	}
}

// keepAlive pings the client until the session is closed
func (s *liveSession) keepAlive() {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait))
			s.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (s *liveSession) close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(liveWriteWait))
		s.conn.Close()
	})
}

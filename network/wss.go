package network

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/database"
)

type Websocket struct {
	addr string
	r    *chi.Mux
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebsocketServer serves the websocket game endpoint on /ws next to a
// read only status api.
func NewWebsocketServer(addr string) Websocket {
	w := Websocket{addr: addr, r: chi.NewRouter()}
	w.r.Use(chimw.RequestID)
	w.r.Use(chimw.RealIP)
	w.r.Use(chimw.Recoverer)

	w.r.Get("/ws", serveWs)
	w.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Use(jsonContentType)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/rooms", listRooms)
		r.Get("/rooms/{id}", getRoom)
	})
	w.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return w
}

func (w Websocket) Serve() error {
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, w.r)
}

// Router exposes the router for tests.
func (w Websocket) Router() chi.Router {
	return w.r
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(json.Marshal(body))
}

func listRooms(w http.ResponseWriter, _ *http.Request) {
	rooms := database.GetRooms()
	summaries := make([]database.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summaries = append(summaries, room.Summary())
	}
	_, _ = w.Write(json.Marshal(summaries))
}

func getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, map[string]string{"error": "bad_id"})
		return
	}
	room := database.GetRoom(id)
	if room == nil {
		writeError(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	_, _ = w.Write(json.Marshal(room.Summary()))
}

func serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	err = handle(protocol.NewWebsocketReadWriteCloser(conn), r.RemoteAddr)
	if err != nil {
		log.Error(err)
	}
}

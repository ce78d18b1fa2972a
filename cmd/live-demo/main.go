// Live matchday demo: simulates one round of matches a minute at a time and
// broadcasts each tick's deltas to every connected WebSocket client.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openfooty/match-engine-go/internal/engine"
	"github.com/openfooty/match-engine-go/internal/squad"
)

var (
	addr    = flag.String("addr", ":8080", "listen address")
	seed    = flag.Int64("seed", 0, "random seed (0: time-based)")
	matches = flag.Int("matches", 4, "number of simultaneous matches")
	tick    = flag.Duration("tick", 500*time.Millisecond, "wall-clock time per simulated minute")
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // demo accepts any origin
	},
}

// MatchView is the client-facing snapshot of one live match.
type MatchView struct {
	FixtureID string   `json:"fixture_id"`
	Home      string   `json:"home"`
	Away      string   `json:"away"`
	Minute    int      `json:"minute"`
	Phase     string   `json:"phase"`
	HomeScore int      `json:"home_score"`
	AwayScore int      `json:"away_score"`
	Events    []string `json:"events,omitempty"`
}

// WSMessage is the envelope for everything sent to clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Matches []MatchView `json:"matches,omitempty"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu    sync.RWMutex
	round *engine.Round
	names map[uuid.UUID]string
}

func newHub(round *engine.Round, names map[uuid.UUID]string) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		round:      round,
		names:      names,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("client connected (%d total)", len(h.clients))
			// New clients get the current scoreboard immediately.
			client.send <- h.snapshotMessage()

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("client disconnected (%d total)", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// simulate steps every live match once per tick until the round finishes,
// broadcasting the per-tick deltas.
func (h *Hub) simulate() {
	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.Lock()
		deltas := h.round.StepAll()
		h.round.ResumeAI()
		done := h.round.Finished()
		h.mu.Unlock()

		views := make([]MatchView, 0, len(deltas))
		for _, d := range deltas {
			views = append(views, h.deltaView(d))
		}
		if len(views) > 0 {
			msg, _ := json.Marshal(WSMessage{Type: "tick", Matches: views})
			h.broadcast <- msg
		}
		if done {
			msg, _ := json.Marshal(WSMessage{Type: "round_finished"})
			h.broadcast <- msg
			log.Println("round finished")
			return
		}
	}
}

func (h *Hub) deltaView(d engine.StepDelta) MatchView {
	events := make([]string, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, engine.FormatEvent(e))
	}
	view := MatchView{
		FixtureID: d.Fixture.ID.String(),
		Home:      h.names[d.Fixture.HomeID],
		Away:      h.names[d.Fixture.AwayID],
		Phase:     d.Phase.String(),
		Events:    events,
	}
	h.mu.RLock()
	for _, m := range h.round.Matches {
		if m.Fixture.ID == d.Fixture.ID {
			st := m.Sim.State()
			view.Minute = st.Minute
			view.HomeScore = st.Score[engine.SideHome]
			view.AwayScore = st.Score[engine.SideAway]
			break
		}
	}
	h.mu.RUnlock()
	return view
}

func (h *Hub) snapshotMessage() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()

	views := make([]MatchView, 0, len(h.round.Matches))
	for _, m := range h.round.Matches {
		st := m.Sim.State()
		views = append(views, MatchView{
			FixtureID: m.Fixture.ID.String(),
			Home:      h.names[m.Fixture.HomeID],
			Away:      h.names[m.Fixture.AwayID],
			Minute:    st.Minute,
			Phase:     m.Sim.Phase().String(),
			HomeScore: st.Score[engine.SideHome],
			AwayScore: st.Score[engine.SideAway],
		})
	}
	msg, _ := json.Marshal(WSMessage{Type: "snapshot", Matches: views})
	return msg
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func serveWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	client := &Client{conn: conn, send: make(chan []byte, 256)}
	hub.register <- client
	go client.writePump()
	go client.readPump(hub)
}

func main() {
	flag.Parse()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := engine.NewRand(rngSeed)
	logger := zap.NewNop()

	round := &engine.Round{}
	names := make(map[uuid.UUID]string)
	for i := 0; i < *matches; i++ {
		home := squad.Generate(fmt.Sprintf("Home %d", i+1), 60+rng.Intn(20), rng)
		away := squad.Generate(fmt.Sprintf("Away %d", i+1), 60+rng.Intn(20), rng)
		names[home.ID] = home.Name
		names[away.ID] = away.Name

		homeTactics, err := squad.DefaultTactics(home, "4-4-2")
		if err != nil {
			log.Fatalf("home tactics: %v", err)
		}
		awayTactics, err := squad.DefaultTactics(away, "4-3-3")
		if err != nil {
			log.Fatalf("away tactics: %v", err)
		}
		fixture := engine.Fixture{ID: uuid.New(), HomeID: home.ID, AwayID: away.ID, Round: 1}
		round.Matches = append(round.Matches, engine.NewLiveMatch(fixture, engine.MatchConfig{
			Home:        home,
			Away:        away,
			HomeTactics: homeTactics,
			AwayTactics: awayTactics,
		}, rng, logger))
	}

	hub := newHub(round, names)
	go hub.run()
	go hub.simulate()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})

	log.Printf("live matchday demo on %s (seed %d)", *addr, rngSeed)
	log.Printf("websocket endpoint: ws://localhost%s/ws", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

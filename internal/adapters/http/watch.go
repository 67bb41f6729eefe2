package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/route"
)

var upgrader = websocket.Upgrader{
	// debug surface: same-host tooling only
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Watch handles GET /watch: upgrade to a websocket and stream a full tree
// snapshot on every published state change. Subscriptions are established
// against the tree as it exists at connect time; reconnect after
// structural changes (flow transitions) to pick up new routers.
func (s *Server) Watch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var mu sync.Mutex
	send := func() error {
		mu.Lock()
		defer mu.Unlock()
		return conn.WriteJSON(s.Engine.Root().Snapshot())
	}

	if err := send(); err != nil {
		return
	}

	cancel := subscribeAll(s.Engine.Root(), func() { _ = send() })
	defer cancel()

	// drain control frames; returns when the peer closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// subscribeAll registers fn on every router reachable from n: children,
// registered modals, active presentations.
func subscribeAll(n coordinator.Node, fn func()) (cancel func()) {
	var cancels []func()
	seen := map[string]bool{}
	var walk func(coordinator.Node)
	walk = func(n coordinator.Node) {
		if n == nil || seen[n.ID()] {
			return
		}
		seen[n.ID()] = true
		cancels = append(cancels, n.SubscribeRoutes(func([]route.Route) { fn() }))
		for _, ch := range n.Children() {
			walk(ch)
		}
		for _, m := range n.ModalCoordinators() {
			walk(m)
		}
		walk(n.ActiveModal())
		walk(n.ActiveDetour())
	}
	walk(n)
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

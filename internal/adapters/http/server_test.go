package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/arborui/arbor/internal/adapters/http"
	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

type engineStub struct {
	root coordinator.Node
}

func (e *engineStub) Navigate(r route.Route) bool { return e.root.Navigate(r) }
func (e *engineStub) Root() coordinator.Node      { return e.root }

func newTestEngine() *engineStub {
	root := coordinator.New("main", route.Name("home"), nil,
		coordinator.WithCanHandle(func(r route.Name) bool { return r == "detail" }),
		coordinator.WithNavigationType(func(r route.Name) navigation.Type { return navigation.Push }),
	)
	return &engineStub{root: root}
}

func TestServer_Tree(t *testing.T) {
	srv := httptest.NewServer(httpadapter.NewHandler(newTestEngine(), nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/tree")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap coordinator.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "main", snap.Name)
	assert.Equal(t, []string{"home"}, snap.Routes)
}

func TestServer_Navigate(t *testing.T) {
	srv := httptest.NewServer(httpadapter.NewHandler(newTestEngine(), nil))
	defer srv.Close()

	t.Run("Success", func(t *testing.T) {
		body := bytes.NewBufferString(`{"route": "detail"}`)
		resp, err := http.Post(srv.URL+"/navigate", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()

		var out httpadapter.NavigateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.True(t, out.OK)
		assert.Equal(t, []string{"home", "detail"}, out.Tree.Routes)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		restore := navigation.SwapReporterForTesting(func(*navigation.Error) {})
		defer restore()

		body := bytes.NewBufferString(`{"route": "nowhere"}`)
		resp, err := http.Post(srv.URL+"/navigate", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()

		var out httpadapter.NavigateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.False(t, out.OK)
	})

	t.Run("Bad Body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/navigate", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Route", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/navigate", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Watch(t *testing.T) {
	engine := newTestEngine()
	srv := httptest.NewServer(httpadapter.NewHandler(engine, nil))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/watch"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	// initial snapshot arrives on connect
	var snap coordinator.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, []string{"home"}, snap.Routes)

	// a navigation publishes an updated snapshot
	require.True(t, engine.Navigate(route.Name("detail")))
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, []string{"home", "detail"}, snap.Routes)
}

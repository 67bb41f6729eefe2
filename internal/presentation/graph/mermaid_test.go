package graph_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/internal/presentation/graph"
	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/route"
)

func fixtureTree(t *testing.T) coordinator.Node {
	t.Helper()
	app := coordinator.New[route.Name]("app", "home", nil)
	feed := coordinator.New[route.Name]("feed", "feedRoot", nil)
	require.NoError(t, app.AddChild(feed))
	sheet := coordinator.New[route.Name]("settings-sheet", "settings", nil)
	app.AddModalCoordinator(sheet)
	return app
}

func TestGenerateMermaid_Golden(t *testing.T) {
	out := graph.GenerateMermaid(fixtureTree(t).Snapshot())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tree", []byte(out))
}

func TestGenerateMermaid_Shapes(t *testing.T) {
	out := graph.GenerateMermaid(fixtureTree(t).Snapshot())

	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, `app(("app <br/> home"))`, "tree root renders as a circle")
	assert.Contains(t, out, "app --> feed")
	assert.Contains(t, out, "app -. modal .-> settings_sheet", "mermaid ids are sanitized")
}

// Package manifest loads declarative coordinator trees from YAML. The CLI
// and the debug server use it to stand up a navigable tree without writing
// Go; embedders building real apps construct coordinators directly.
//
// Routes in a manifest are identifier-only (route.Name); detent
// configuration rides along as loosely-typed metadata and is decoded with
// mapstructure.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// Manifest is the top-level document.
type Manifest struct {
	Name        string         `yaml:"name"`
	Coordinator CoordinatorDef `yaml:"coordinator"`
}

// CoordinatorDef declares one coordinator and, recursively, its children
// and registered modal coordinators.
type CoordinatorDef struct {
	Name     string           `yaml:"name"`
	Kind     string           `yaml:"kind"` // "plain" (default) or "tabs"
	Root     string           `yaml:"root"`
	TabItem  *TabItemDef      `yaml:"tab_item"`
	Routes   []RouteDef       `yaml:"routes"`
	Children []CoordinatorDef `yaml:"children"`
	Modals   []CoordinatorDef `yaml:"modals"`
}

// TabItemDef is the tab metadata for a tab child.
type TabItemDef struct {
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// RouteDef declares one handleable route.
type RouteDef struct {
	ID          string         `yaml:"id"`
	Type        string         `yaml:"type"` // push (default), replace, modal, tabSwitch
	Tab         int            `yaml:"tab"`
	Path        []string       `yaml:"path"`
	Description string         `yaml:"description"`
	Detents     map[string]any `yaml:"detents"`
}

// detentDef is the mapstructure target for RouteDef.Detents.
type detentDef struct {
	Detents     []string `mapstructure:"detents"`
	Selected    string   `mapstructure:"selected"`
	MinHeight   *float64 `mapstructure:"min_height"`
	IdealHeight *float64 `mapstructure:"ideal_height"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Coordinator.Name == "" {
		return nil, fmt.Errorf("manifest: coordinator name is required")
	}
	if m.Coordinator.Root == "" {
		return nil, fmt.Errorf("manifest: coordinator root is required")
	}
	return &m, nil
}

// Build constructs the coordinator tree the manifest declares.
func (m *Manifest) Build() (coordinator.Node, error) {
	return buildDef(m.Coordinator)
}

// Descriptions collects the per-route markdown descriptions, keyed by
// route id, for the simulator to render.
func (m *Manifest) Descriptions() map[string]string {
	out := map[string]string{}
	collectDescriptions(m.Coordinator, out)
	return out
}

func collectDescriptions(def CoordinatorDef, out map[string]string) {
	for _, r := range def.Routes {
		if r.Description != "" {
			out[r.ID] = r.Description
		}
	}
	for _, ch := range def.Children {
		collectDescriptions(ch, out)
	}
	for _, mod := range def.Modals {
		collectDescriptions(mod, out)
	}
}

func buildDef(def CoordinatorDef) (coordinator.Node, error) {
	opts, err := defOptions(def)
	if err != nil {
		return nil, err
	}

	modals := make([]*coordinator.Coordinator[route.Name], 0, len(def.Modals))
	for _, modDef := range def.Modals {
		if modDef.Kind == "tabs" {
			return nil, fmt.Errorf("manifest: modal coordinator %q: tab coordinators cannot be registered as modals", modDef.Name)
		}
		mod, err := buildPlain(modDef)
		if err != nil {
			return nil, err
		}
		modals = append(modals, mod)
	}
	for _, mod := range modals {
		opts = append(opts, coordinator.WithModalCoordinators[route.Name](mod))
	}

	var node coordinator.Node
	var addChild func(coordinator.Node) error
	switch def.Kind {
	case "", "plain":
		c := coordinator.New(def.Name, route.Name(def.Root), nil, opts...)
		node, addChild = c, c.AddChild
	case "tabs":
		t := coordinator.NewTab(def.Name, route.Name(def.Root), nil, opts...)
		node, addChild = t, t.AddChild
	default:
		return nil, fmt.Errorf("manifest: coordinator %q: unknown kind %q", def.Name, def.Kind)
	}

	for _, childDef := range def.Children {
		child, err := buildDef(childDef)
		if err != nil {
			return nil, err
		}
		if err := addChild(child); err != nil {
			return nil, fmt.Errorf("manifest: coordinator %q: %w", def.Name, err)
		}
	}
	return node, nil
}

func buildPlain(def CoordinatorDef) (*coordinator.Coordinator[route.Name], error) {
	opts, err := defOptions(def)
	if err != nil {
		return nil, err
	}
	c := coordinator.New(def.Name, route.Name(def.Root), nil, opts...)
	for _, childDef := range def.Children {
		child, err := buildDef(childDef)
		if err != nil {
			return nil, err
		}
		if err := c.AddChild(child); err != nil {
			return nil, fmt.Errorf("manifest: coordinator %q: %w", def.Name, err)
		}
	}
	return c, nil
}

func defOptions(def CoordinatorDef) ([]coordinator.Option[route.Name], error) {
	byID := make(map[string]RouteDef, len(def.Routes))
	detents := make(map[string]*navigation.DetentConfiguration)
	for _, r := range def.Routes {
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("manifest: coordinator %q: duplicate route id %q", def.Name, r.ID)
		}
		byID[r.ID] = r
		if r.Detents != nil {
			cfg, err := decodeDetents(r.Detents)
			if err != nil {
				return nil, fmt.Errorf("manifest: route %q: %w", r.ID, err)
			}
			detents[r.ID] = cfg
		}
	}

	rootID := def.Root
	opts := []coordinator.Option[route.Name]{
		// a coordinator always claims its own root alongside its declared
		// routes
		coordinator.WithCanHandle(func(r route.Name) bool {
			if string(r) == rootID {
				return true
			}
			_, ok := byID[string(r)]
			return ok
		}),
		coordinator.WithNavigationType(func(r route.Name) navigation.Type {
			return navTypeOf(byID[string(r)])
		}),
		coordinator.WithNavigationPath(func(r route.Name) []route.Route {
			rd, ok := byID[string(r)]
			if !ok || len(rd.Path) == 0 {
				return nil
			}
			path := make([]route.Route, len(rd.Path))
			for i, id := range rd.Path {
				path[i] = route.Name(id)
			}
			return path
		}),
		coordinator.WithModalDetentConfiguration(func(r route.Name) *navigation.DetentConfiguration {
			return detents[string(r)]
		}),
	}
	if def.TabItem != nil {
		opts = append(opts, coordinator.WithTabItem[route.Name](def.TabItem.Text, def.TabItem.Image))
	}
	return opts, nil
}

func navTypeOf(def RouteDef) navigation.Type {
	switch def.Type {
	case "", "push":
		return navigation.Push
	case "replace":
		return navigation.Replace
	case "modal":
		return navigation.Modal
	case "tabSwitch":
		return navigation.TabSwitch(def.Tab)
	default:
		// surfaces as invalidDetourNavigation / configuration errors at
		// navigation time, which Validate flags statically
		return navigation.Type{Kind: navigation.KindDetour}
	}
}

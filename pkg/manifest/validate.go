package manifest

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/arborui/arbor/pkg/navigation"
)

func decodeDetents(raw map[string]any) (*navigation.DetentConfiguration, error) {
	var def detentDef
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode detents: %w", err)
	}
	cfg := &navigation.DetentConfiguration{}
	for _, d := range def.Detents {
		detent, err := parseDetent(d)
		if err != nil {
			return nil, err
		}
		cfg.Detents = append(cfg.Detents, detent)
	}
	if def.Selected != "" {
		detent, err := parseDetent(def.Selected)
		if err != nil {
			return nil, err
		}
		if !cfg.Allows(detent) {
			return nil, fmt.Errorf("selected detent %q is not among the allowed detents", def.Selected)
		}
		cfg.Selected = &detent
	}
	cfg.MinHeight = def.MinHeight
	cfg.IdealHeight = def.IdealHeight
	return cfg, nil
}

func parseDetent(s string) (navigation.Detent, error) {
	switch d := navigation.Detent(s); d {
	case navigation.DetentSmall, navigation.DetentMedium, navigation.DetentLarge,
		navigation.DetentExtraLarge, navigation.DetentFullscreen, navigation.DetentCustom:
		return d, nil
	default:
		return "", fmt.Errorf("unknown detent %q", s)
	}
}

// Validate runs the static configuration checks on the manifest: route
// types, modal claims without a capable registered modal coordinator,
// modal-typed path entries, tab children without tab items, and tabSwitch
// ranges.
func (m *Manifest) Validate() []error {
	var errs []error
	validateDef(m.Coordinator, &errs)
	return errs
}

func validateDef(def CoordinatorDef, errs *[]error) {
	byID := map[string]RouteDef{}
	for _, r := range def.Routes {
		if _, dup := byID[r.ID]; dup {
			*errs = append(*errs, fmt.Errorf("coordinator %q: duplicate route id %q", def.Name, r.ID))
		}
		byID[r.ID] = r
	}

	for _, r := range def.Routes {
		switch r.Type {
		case "", "push", "replace", "modal", "tabSwitch":
		default:
			*errs = append(*errs, fmt.Errorf("coordinator %q: route %q has invalid navigation type %q", def.Name, r.ID, r.Type))
		}
		if r.Type == "tabSwitch" {
			if def.Kind != "tabs" {
				*errs = append(*errs, fmt.Errorf("coordinator %q: route %q switches tabs but the coordinator is not a tab coordinator", def.Name, r.ID))
			} else if r.Tab < 0 || r.Tab >= len(def.Children) {
				*errs = append(*errs, fmt.Errorf("coordinator %q: route %q tab index %d outside [0, %d)", def.Name, r.ID, r.Tab, len(def.Children)))
			}
		}
		if r.Type == "modal" && !modalCanHandle(def, r.ID) {
			*errs = append(*errs, fmt.Errorf("coordinator %q: route %q is modal but no registered modal coordinator handles it", def.Name, r.ID))
		}
		for _, p := range r.Path {
			switch pathDef := byID[p]; pathDef.Type {
			case "", "push", "replace":
			default:
				*errs = append(*errs, fmt.Errorf("coordinator %q: route %q path entry %q presents as %s; only push and replace are allowed", def.Name, r.ID, p, pathDef.Type))
			}
		}
		if r.Detents != nil {
			if _, err := decodeDetents(r.Detents); err != nil {
				*errs = append(*errs, fmt.Errorf("coordinator %q: route %q: %v", def.Name, r.ID, err))
			}
		}
	}

	if def.Kind == "tabs" {
		for _, ch := range def.Children {
			if ch.TabItem == nil {
				*errs = append(*errs, fmt.Errorf("coordinator %q: tab child %q did not supply a tab item", def.Name, ch.Name))
			}
		}
	}

	for _, ch := range def.Children {
		validateDef(ch, errs)
	}
	for _, mod := range def.Modals {
		validateDef(mod, errs)
	}
}

func modalCanHandle(def CoordinatorDef, routeID string) bool {
	for _, mod := range def.Modals {
		for _, r := range mod.Routes {
			if r.ID == routeID {
				return true
			}
		}
		if mod.Root == routeID {
			return true
		}
	}
	return false
}

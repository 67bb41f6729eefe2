// Package tree renders a coordinator snapshot as an indented terminal
// tree for the simulator.
package tree

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arborui/arbor/pkg/coordinator"
)

// Render returns an indented rendering of the snapshot, colored for the
// given termenv profile. Pass termenv.Ascii for plain output.
func Render(snap coordinator.Snapshot, profile termenv.Profile) string {
	var sb strings.Builder
	renderNode(&sb, snap, "", profile)
	return sb.String()
}

func renderNode(sb *strings.Builder, snap coordinator.Snapshot, indent string, p termenv.Profile) {
	fmt.Fprintf(sb, "%s%s (%s)\n", indent, colorize(snap.Name, p, "6", true), snap.Context)

	routes := strings.Join(snap.Routes, " > ")
	fmt.Fprintf(sb, "%s  routes: %s\n", indent, colorize(routes, p, "2", false))

	if snap.Presented != "" {
		fmt.Fprintf(sb, "%s  modal: %s\n", indent, colorize(snap.Presented, p, "5", false))
	}
	if snap.Detour != "" {
		fmt.Fprintf(sb, "%s  detour: %s\n", indent, colorize(snap.Detour, p, "3", false))
	}
	if len(snap.PushedChildren) > 0 {
		fmt.Fprintf(sb, "%s  pushed: %s\n", indent, strings.Join(snap.PushedChildren, ", "))
	}

	for _, ch := range snap.Children {
		renderNode(sb, ch, indent+"  ", p)
	}
	if snap.Modal != nil {
		fmt.Fprintf(sb, "%s  [modal]\n", indent)
		renderNode(sb, *snap.Modal, indent+"  ", p)
	}
	if snap.DetourChild != nil {
		fmt.Fprintf(sb, "%s  [detour]\n", indent)
		renderNode(sb, *snap.DetourChild, indent+"  ", p)
	}
}

func colorize(s string, p termenv.Profile, color string, bold bool) string {
	if p == termenv.Ascii {
		return s
	}
	styled := termenv.String(s).Foreground(p.Color(color))
	if bold {
		styled = styled.Bold()
	}
	return styled.String()
}

// Package graph renders a coordinator tree as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/arborui/arbor/pkg/coordinator"
)

// GenerateMermaid produces Mermaid flowchart syntax for a snapshot.
// It applies semantic shapes:
// - Tree root: ((Circle))
// - Tab coordinator children: [/Parallelogram/]
// - Active modal / detour: [[Subroutine]]
// - Default: [Rectangle]
// Edges: solid for children, dotted for registered modals, thick for
// active presentations.
func GenerateMermaid(snap coordinator.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	writeNode(&sb, snap, true)
	return sb.String()
}

func writeNode(sb *strings.Builder, snap coordinator.Snapshot, isRoot bool) {
	safeID := sanitizeMermaidID(snap.Name)

	opener, closer := "[", "]"
	switch {
	case isRoot:
		opener, closer = "((", "))"
	case snap.Context == "tab":
		opener, closer = "[/", "/]"
	case snap.Context == "modal" || snap.Context == "detour":
		opener, closer = "[[", "]]"
	}
	label := snap.Name
	if routes := strings.Join(snap.Routes, " > "); routes != "" {
		label = fmt.Sprintf("%s <br/> %s", snap.Name, routes)
	}
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

	for _, ch := range snap.Children {
		fmt.Fprintf(sb, "    %s --> %s\n", safeID, sanitizeMermaidID(ch.Name))
		writeNode(sb, ch, false)
	}
	for _, m := range snap.RegisteredModals {
		fmt.Fprintf(sb, "    %s -. modal .-> %s\n", safeID, sanitizeMermaidID(m))
	}
	if snap.Modal != nil {
		fmt.Fprintf(sb, "    %s == presents ==> %s\n", safeID, sanitizeMermaidID(snap.Modal.Name))
		writeNode(sb, *snap.Modal, false)
	}
	if snap.DetourChild != nil {
		fmt.Fprintf(sb, "    %s == detour ==> %s\n", safeID, sanitizeMermaidID(snap.DetourChild.Name))
		writeNode(sb, *snap.DetourChild, false)
	}
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(" ", "_", "-", "_", "/", "_", ".", "_")
	return r.Replace(id)
}

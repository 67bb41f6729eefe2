package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arborui/arbor"
	"github.com/arborui/arbor/internal/presentation/tree"
	"github.com/arborui/arbor/internal/presentation/tui"
	"github.com/arborui/arbor/pkg/coordinator"
)

// Simulator is the interactive navigation REPL: type a route id to
// navigate, "back" to pop, "tree" to dump the live tree.
type Simulator struct {
	engine       *arbor.Engine
	descriptions map[string]string
	in           io.Reader
	out          io.Writer
	profile      termenv.Profile
	renderMD     func(string) (string, error)
}

// NewSimulator wires a simulator over engine. descriptions maps route ids
// to markdown rendered after a successful navigation.
func NewSimulator(engine *arbor.Engine, descriptions map[string]string, in io.Reader, out io.Writer) *Simulator {
	profile := termenv.Ascii
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.ColorProfile()
	}
	return &Simulator{
		engine:       engine,
		descriptions: descriptions,
		in:           in,
		out:          out,
		profile:      profile,
		renderMD:     tui.NewRenderer(),
	}
}

// Run reads commands until EOF or "quit".
func (s *Simulator) Run() error {
	fmt.Fprintln(s.out, "arbor simulator: type a route id, 'back', 'tree', or 'quit'")
	s.printTree()

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "tree":
			s.printTree()
		case "back":
			if !coordinator.CanNavigateBack(s.engine.Root()) {
				fmt.Fprintln(s.out, "nothing to go back to")
				continue
			}
			coordinator.BackAction(s.engine.Root())()
			s.printTree()
		case "help":
			fmt.Fprintln(s.out, "commands: <route-id> | back | tree | quit")
		default:
			s.navigate(line)
		}
	}
}

func (s *Simulator) navigate(id string) {
	if !s.engine.NavigateTo(id) {
		fmt.Fprintf(s.out, "%s\n", termenv.String("navigation failed: "+id).Foreground(s.profile.Color("1")))
		return
	}
	if md, ok := s.descriptions[id]; ok {
		if rendered, err := s.renderMD(md); err == nil {
			fmt.Fprint(s.out, rendered)
		}
	}
	s.printTree()
}

func (s *Simulator) printTree() {
	fmt.Fprint(s.out, tree.Render(s.engine.Snapshot(), s.profile))
}

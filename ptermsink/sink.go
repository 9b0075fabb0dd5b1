// Package ptermsink adapts github.com/pterm/pterm to the treesitter.Sink
// interface, following the same debug-logger convention the pack's
// npillmayer-gorgo REPL front-end uses: one styled line per event, gated
// by pterm's own debug-message toggle.
package ptermsink

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Sink prints one pterm debug line per driver event, prefixed with a
// label so multiple parsers logging through the same sink stay
// distinguishable.
type Sink struct {
	Label string
}

// New returns a Sink tagged with label (typically the grammar's name or a
// short session id).
func New(label string) *Sink {
	pterm.EnableDebugMessages()
	return &Sink{Label: label}
}

// Event implements treesitter.Sink.
func (s *Sink) Event(line string) {
	if s.Label == "" {
		pterm.Debug.Println(line)
		return
	}
	pterm.Debug.Println(fmt.Sprintf("[%s] %s", s.Label, line))
}

package treesitter

import "fmt"

// Sink receives one line per significant driver event when a Parser's
// Debug flag is set. The driver core stays dependency-free;
// a concrete Sink (e.g. the pterm-backed one in this module's ptermsink
// package) is injected by the caller.
type Sink interface {
	Event(line string)
}

// DiscardSink is a Sink that drops every line. It is the Parser default
// so Debug can be toggled without a nil check at every call site.
type DiscardSink struct{}

// Event implements Sink.
func (DiscardSink) Event(string) {}

func (p *Parser) logf(format string, args ...any) {
	if !p.Debug || p.Sink == nil {
		return
	}
	p.Sink.Event(fmt.Sprintf(format, args...))
}

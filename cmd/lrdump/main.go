// Command lrdump parses a file against the bundled arithmetic grammar and
// prints the resulting tree, one line per node: read input, run the core,
// report the result.
package main

import (
	"fmt"
	"os"
	"strings"

	treesitter "github.com/eye-make/tree-sitter"
	"github.com/eye-make/tree-sitter/arithmetic"
	"github.com/eye-make/tree-sitter/ptermsink"
	flag "github.com/spf13/pflag"
)

func main() {
	debug := flag.Bool("debug", false, "emit one line per parser event")
	editAt := flag.Int("edit-at", -1, "character offset of an incremental edit (-1 disables)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lrdump [--debug] [--edit-at N] <file>")
		os.Exit(1)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		os.Exit(1)
	}

	lang := arithmetic.Language()
	p := treesitter.New(lang)
	defer p.Destroy()

	if *debug {
		p.Debug = true
		p.Sink = ptermsink.New(args[0])
	}

	lx := arithmetic.NewLexer(src)
	root := p.Parse(lx, nil)

	if *editAt >= 0 {
		// Demonstrate incremental reparse: drop one character at editAt
		// and reparse the edited buffer from the existing stack.
		edited := make([]byte, 0, len(src))
		edited = append(edited, src[:*editAt]...)
		if *editAt < len(src) {
			edited = append(edited, src[*editAt+1:]...)
		}
		lx.SetSource(edited)
		root = p.Parse(lx, &treesitter.Edit{
			Position:     treesitter.Length{Chars: uint32(*editAt)},
			CharsRemoved: 1,
		})
	}

	dump(root, lx.Source(), 0, 0)
}

// dump prints one line per node, pre-order. pos is the absolute character
// offset at which n begins (before its own padding).
func dump(n *treesitter.Node, src []byte, depth int, pos uint32) {
	if n == nil {
		return
	}
	start := pos + n.Padding.Chars
	end := start + n.Size.Chars
	text := ""
	if len(n.Children) == 0 && int(end) <= len(src) {
		text = fmt.Sprintf(" %q", src[start:end])
	}
	fmt.Printf("%s#%d [%d,%d)%s\n", strings.Repeat("  ", depth), n.Symbol, start, end, text)

	childPos := pos
	for _, c := range n.Children {
		dump(c, src, depth+1, childPos)
		childPos += c.Padding.Chars + c.Size.Chars
	}
}

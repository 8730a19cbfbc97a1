package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
)

// ErrNilPoset indicates WriteDOT was given a nil poset.
var ErrNilPoset = errors.New("converters: poset is nil")

// DOTOption configures WriteDOT.
type DOTOption func(*dotOptions)

type dotOptions struct {
	name string
	tree *hierarchy.Tree
}

// WithGraphName sets the digraph identifier (default "ac_poset").
func WithGraphName(name string) DOTOption {
	return func(o *dotOptions) { o.name = name }
}

// WithTree marks cross-tree edges of t as dashed.
func WithTree(t *hierarchy.Tree) DOTOption {
	return func(o *dotOptions) { o.tree = t }
}

// WriteDOT writes p as a Graphviz digraph to w.
func WriteDOT(w io.Writer, p *poset.Poset, opts ...DOTOption) error {
	if p == nil {
		return ErrNilPoset
	}
	o := dotOptions{name: "ac_poset"}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quote(o.name))
	bw.WriteString("\trankdir=BT;\n")
	bw.WriteString("\tnode [shape=box];\n")

	for i, c := range p.Concepts {
		var ids []string
		for b, ok := c.Configurations.NextSet(0); ok; b, ok = c.Configurations.NextSet(b + 1) {
			if int(b) < len(p.ConfigIDs) {
				ids = append(ids, p.ConfigIDs[b])
			}
		}
		label := strings.Join(c.Features, "\n") + "\n{" + strings.Join(ids, ", ") + "}"
		fmt.Fprintf(bw, "\t%d [label=%s];\n", i, quote(label))
	}

	for _, e := range p.Graph.Edges() {
		if o.tree != nil && !o.tree.IsTreeEdge(e.From, e.To) {
			fmt.Fprintf(bw, "\t%d -> %d [style=dashed];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(bw, "\t%d -> %d;\n", e.From, e.To)
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// quote renders s as a DOT string: '"' and '\' escaped, newlines as \n.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

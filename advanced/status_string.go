package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/procmesh/triangulate/dbg"
)

// This is for debugging purposes only. Status edges are ints, which get hard
// to tell apart in a dump, so they're shown with readable names alongside
// the raw indices, colored by the classification of their helper vertex.

func (d *decomposer) dbgEdgeString(edge int) string {
	name := dbg.Name(edge)
	h, ok := d.status.helper[edge]
	if !ok {
		return fmt.Sprintf("%s [%d->%d helper:none]", name, edge, d.next(edge))
	}
	switch d.kinds[h] {
	case VertexMerge:
		name = aurora.Red(name).String()
	case VertexStart, VertexSplit:
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("%s [%d->%d helper:%d %s]", name, edge, d.next(edge), h, d.kinds[h])
}

func (d *decomposer) dbgStatusString() string {
	parts := make([]string, 0, len(d.status.edges))
	for _, e := range d.status.edges {
		parts = append(parts, d.dbgEdgeString(e))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot[K any](tree *Tree[K], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if tree.IsEmpty() {
		order := 0
		if tree != nil {
			order = tree.Order()
		}
		fmt.Fprintf(&b, "\t\"0\" [label=\"empty, order %d\",shape=plaintext];\n", order)
		b.WriteString("}\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	ids := newtable[K]()
	var nodelist, edgelist strings.Builder
	tree.each(tree.root, 0, func(n *node[K], depth int) bool {
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", ID, dotLabel(n.keys), nodeDotStyles(n.leaf))
		for _, child := range n.children {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return true
	})
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.ReplaceAll(fmt.Sprint(k), `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(isleaf bool) string {
	s := ",shape=box"
	if isleaf {
		s += ",style=filled"
	} else {
		s += ",style=\"filled,rounded\""
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

package sumtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Inner nodes are labelled with their aggregate and covered range, leaves
// with their element value and sequence position.
func Tree2Dot[T Value](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for node := range tree.Walk() {
		styles := nodeDotStyles(node.IsLeaf())
		if node.IsLeaf() {
			label := fmt.Sprintf("%v @%d", node.Sum, node.From)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node.Slot, label, styles)
		} else {
			label := fmt.Sprintf("%v\\n[%d,%d]", node.Sum, node.From, node.To)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node.Slot, label, styles)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node.Slot, 2*node.Slot+1)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node.Slot, 2*node.Slot+2)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := "style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

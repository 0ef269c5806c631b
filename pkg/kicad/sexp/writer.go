package sexp

import (
	"bufio"
	"io"
	"strings"
)

// inlineLimit is the longest compact form still written on one line.
// Beyond this a list breaks into the indented block layout pcbnew uses.
const inlineLimit = 80

// Write serializes a node tree to w in the indented layout KiCad emits,
// so a rewritten board file diffs cleanly against editor output.
func Write(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

// Format serializes a node tree to a string.
func Format(n Node) string {
	var sb strings.Builder
	Write(&sb, n)
	return sb.String()
}

func writeNode(w *bufio.Writer, n Node, depth int) {
	list, ok := n.(*List)
	if !ok {
		w.WriteString(n.String())
		return
	}

	compact := list.String()
	if len(compact)+2*depth <= inlineLimit && !containsNestedList(list) {
		w.WriteString(compact)
		return
	}

	// Block layout: leading atoms stay on the head line, each list child
	// goes on its own indented line, closing paren on its own line.
	w.WriteByte('(')
	i := 0
	for ; i < len(list.Items); i++ {
		if _, isList := list.Items[i].(*List); isList {
			break
		}
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(list.Items[i].String())
	}
	for ; i < len(list.Items); i++ {
		w.WriteByte('\n')
		writeIndent(w, depth+1)
		writeNode(w, list.Items[i], depth+1)
	}
	w.WriteByte('\n')
	writeIndent(w, depth)
	w.WriteByte(')')
}

// containsNestedList reports whether any child list itself contains a
// list. Lists of flat children (e.g. (at 1.88 0) inside (via ...)) may
// still inline; deeper nesting always breaks.
func containsNestedList(l *List) bool {
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok {
			for _, inner := range sub.Items {
				if _, ok := inner.(*List); ok {
					return true
				}
			}
		}
	}
	return false
}

func writeIndent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("  ")
	}
}

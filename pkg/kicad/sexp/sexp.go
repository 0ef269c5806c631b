// Package sexp implements the S-expression document tree used by KiCad
// board files. Unlike a read-only parser, the tree is mutable and can be
// serialized back to disk, so a board file can be loaded, edited, and
// rewritten without losing sections the caller does not understand.
package sexp

import (
	"strconv"
	"strings"
)

// Node is an element of the document tree: either an atom (Symbol or
// String) or a List.
type Node interface {
	// IsAtom returns true for Symbol and String nodes
	IsAtom() bool

	// String returns the compact single-line serialized form
	String() string
}

// Symbol is an unquoted atom: a keyword, number, or identifier.
type Symbol string

func (s Symbol) IsAtom() bool   { return true }
func (s Symbol) String() string { return string(s) }

// String is a quoted string atom. It is kept distinct from Symbol so the
// serializer can reproduce quoting the way pcbnew writes it.
type String string

func (s String) IsAtom() bool { return true }

func (s String) String() string {
	return strconv.Quote(string(s))
}

// List is a parenthesized sequence of nodes. The first item is
// conventionally a Symbol naming the node type, e.g. (via ...).
type List struct {
	Items []Node
}

// NewList builds a list node from its items.
func NewList(items ...Node) *List {
	return &List{Items: items}
}

func (l *List) IsAtom() bool { return false }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Name returns the list's leading symbol, or "" if the list is empty or
// does not start with a symbol.
func (l *List) Name() string {
	if len(l.Items) == 0 {
		return ""
	}
	if sym, ok := l.Items[0].(Symbol); ok {
		return string(sym)
	}
	return ""
}

// Len returns the number of items, including the leading name symbol.
func (l *List) Len() int {
	return len(l.Items)
}

// At returns the item at index i, or nil if out of range.
func (l *List) At(i int) Node {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}

// Append adds items to the end of the list.
func (l *List) Append(items ...Node) {
	l.Items = append(l.Items, items...)
}

// Find returns the first child list named key.
func (l *List) Find(key string) (*List, bool) {
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAll returns every child list named key, in document order.
func (l *List) FindAll(key string) []*List {
	var out []*List
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			out = append(out, sub)
		}
	}
	return out
}

// HasFlag reports whether the list contains the bare symbol, e.g. the
// "locked" marker in (footprint ... locked ...).
func (l *List) HasFlag(name string) bool {
	for _, item := range l.Items {
		if sym, ok := item.(Symbol); ok && string(sym) == name {
			return true
		}
	}
	return false
}

// Text returns the atom text at index i (symbol content or unquoted
// string content). Returns "" for lists and out-of-range indexes.
func (l *List) Text(i int) string {
	switch n := l.At(i).(type) {
	case Symbol:
		return string(n)
	case String:
		return string(n)
	default:
		return ""
	}
}

// Float parses the atom at index i as a float64.
func (l *List) Float(i int) (float64, error) {
	return strconv.ParseFloat(l.Text(i), 64)
}

// Int parses the atom at index i as an int.
func (l *List) Int(i int) (int, error) {
	return strconv.Atoi(l.Text(i))
}

// Construction helpers for building board elements.

// L builds a named list: L("at", Float(1.88), Float(0)) -> (at 1.88 0).
func L(name string, items ...Node) *List {
	all := make([]Node, 0, len(items)+1)
	all = append(all, Symbol(name))
	all = append(all, items...)
	return &List{Items: all}
}

// Float formats a float the way pcbnew writes coordinates: shortest
// decimal form that round-trips.
func Float(v float64) Symbol {
	return Symbol(strconv.FormatFloat(v, 'f', -1, 64))
}

// Int formats an integer atom.
func Int(v int) Symbol {
	return Symbol(strconv.Itoa(v))
}

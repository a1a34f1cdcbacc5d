// Package lookup holds the static tables that map opaque CMS field
// identifiers to display labels.
package lookup

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when a table declares the same id twice.
var ErrDuplicateID = errors.New("duplicate lookup id")

// Entry is one id → label pair.
type Entry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Table is an immutable id → label mapping that remembers declaration order.
type Table struct {
	order  []Entry
	labels map[string]string
}

// NewTable builds a table from entries in declaration order.
func NewTable(entries ...Entry) (Table, error) {
	t := Table{
		order:  make([]Entry, 0, len(entries)),
		labels: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.labels[e.ID]; ok {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		t.labels[e.ID] = e.Label
		t.order = append(t.order, e)
	}
	return t, nil
}

func mustTable(entries ...Entry) Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Label returns the label for id.
func (t Table) Label(id string) (string, bool) {
	l, ok := t.labels[id]
	return l, ok
}

// Labels returns the labels in declaration order.
func (t Table) Labels() []string {
	out := make([]string, len(t.order))
	for i, e := range t.order {
		out[i] = e.Label
	}
	return out
}

// Entries returns a copy of the entries in declaration order.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.order...)
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.order)
}

// Tables groups the four classification axes used by the transformer.
type Tables struct {
	Regions      Table
	States       Table
	Continents   Table
	ListingTypes Table
}

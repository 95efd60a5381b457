// Package types contains the storage types shared by the header package.
package types

import (
	"iter"
	"slices"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Entry is a single name/value pair.
type Entry struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// Entries is an ordered list of name/value pairs.
// Names are stored as supplied and compared case-insensitively.
type Entries []Entry

// Values returns values associated with the given name in insertion order.
// If there are no values associated with the name, Values returns nil.
func (es Entries) Values(name string) []string {
	var vals []string
	for _, e := range es {
		if util.EqFold(e.Name, name) {
			vals = append(vals, e.Value)
		}
	}
	return vals
}

// Has checks whether the name is in the list.
func (es Entries) Has(name string) bool { return es.index(name) >= 0 }

func (es Entries) index(name string) int {
	return slices.IndexFunc(es, func(e Entry) bool { return util.EqFold(e.Name, name) })
}

// Names returns distinct names in order of their first appearance.
func (es Entries) Names() []string {
	var names []string
	for i, e := range es {
		if es[:i].index(e.Name) < 0 {
			names = append(names, e.Name)
		}
	}
	return names
}

// All returns an iterator over all pairs in insertion order.
func (es Entries) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range es {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Append adds a new pair to the end of the list.
func (es *Entries) Append(name, value string) {
	*es = append(*es, Entry{name, value})
}

// Set replaces all values of the name with the single value.
// The replacing pair takes the place and the stored name of the first existing pair,
// otherwise it is appended.
func (es *Entries) Set(name, value string) {
	i := es.index(name)
	if i < 0 {
		es.Append(name, value)
		return
	}

	(*es)[i].Value = value
	rest := slices.DeleteFunc((*es)[i+1:], func(e Entry) bool { return util.EqFold(e.Name, name) })
	*es = (*es)[:i+1+len(rest)]
}

// Del deletes all pairs with the name.
func (es *Entries) Del(name string) {
	*es = slices.DeleteFunc(*es, func(e Entry) bool { return util.EqFold(e.Name, name) })
}

// Clear resets the list.
func (es *Entries) Clear() {
	clear(*es)
	*es = (*es)[:0]
}

// Clone returns a copy of the list.
func (es Entries) Clone() Entries {
	if es == nil {
		return nil
	}
	return slices.Clone(es)
}

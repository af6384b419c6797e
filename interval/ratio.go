package interval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-harmonic/dsp/core"
)

// Ratio is a frequency multiplier relative to the base tone.
type Ratio float64

// Cents returns the interval size in cents.
func (r Ratio) Cents() float64 {
	return core.Cents(float64(r))
}

// Entry pairs an interval name with its ratio.
type Entry struct {
	Name  string
	Ratio Ratio
}

// Table is an immutable, ordered list of named ratios.
// Iteration order is part of its contract.
type Table struct {
	entries []Entry
	index   map[string]int
}

func newTable(entries []Entry) Table {
	t := Table{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(t.entries, entries)
	for i, e := range t.entries {
		if _, dup := t.index[e.Name]; dup {
			panic(fmt.Sprintf("interval: duplicate name %q", e.Name))
		}
		t.index[e.Name] = i
	}
	return t
}

// Len returns the number of intervals.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns the interval names in table order.
func (t Table) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}
	return out
}

// Ratios returns the ratios in table order.
func (t Table) Ratios() []Ratio {
	out := make([]Ratio, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Ratio
	}
	return out
}

// Lookup returns the ratio registered under name.
func (t Table) Lookup(name string) (Ratio, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.entries[i].Ratio, true
}

// Sorted returns the ratios in ascending order.
func (t Table) Sorted() []Ratio {
	out := t.Ratios()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t Table) String() string {
	var b strings.Builder
	for _, e := range t.entries {
		fmt.Fprintf(&b, "%-14s %.6f (%7.2f cents)\n", e.Name+":", float64(e.Ratio), e.Ratio.Cents())
	}
	return b.String()
}

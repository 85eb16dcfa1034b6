package sqlgen

import (
	"strings"
)

type joinT struct {
	Type  string
	Table string
	On    string
}

// Join represents a generic JOIN clause: a kind keyword, a table reference
// and a raw ON condition.
type Join struct {
	Type  string
	Table *Table
	On    Fragment
}

// Hash returns a unique identifier for the struct.
func (j *Join) Hash() uint64 {
	return quickHash(FragmentType_Join, j.Type, getHash(j.Table), getHash(j.On))
}

// Compile transforms the Join into its equivalent SQL representation.
func (j *Join) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(j); ok {
		return z
	}

	if j.Table != nil {
		data := joinT{
			Type:  j.Type,
			Table: j.Table.Compile(layout),
			On:    layout.doCompile(j.On),
		}
		compiled = mustParse(layout.JoinLayout, data)
	}

	layout.Write(j, compiled)

	return
}

// Joins represents an array of JOIN clauses, rendered in append order.
type Joins struct {
	Conditions []Fragment
}

// JoinConditions creates and returns an array of JOIN clauses.
func JoinConditions(joins ...*Join) *Joins {
	fragments := make([]Fragment, len(joins))
	for i := range fragments {
		fragments[i] = joins[i]
	}
	return &Joins{Conditions: fragments}
}

// Hash returns a unique identifier for the struct.
func (js *Joins) Hash() uint64 {
	h := make([]interface{}, len(js.Conditions))
	for i := range js.Conditions {
		h[i] = js.Conditions[i]
	}
	return quickHash(FragmentType_Joins, h...)
}

// Compile transforms the Joins into an equivalent SQL representation.
func (js *Joins) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(js); ok {
		return z
	}

	l := len(js.Conditions)
	if l > 0 {
		out := make([]string, 0, l)
		for i := 0; i < l; i++ {
			out = append(out, js.Conditions[i].Compile(layout))
		}
		compiled = strings.Join(out, " ")
	}

	layout.Write(js, compiled)

	return
}

package sqlgen

import (
	"fmt"
	"strings"
)

// Value represents an SQL value. String values are rendered single-quoted,
// any other type is rendered bare through its default format. No escaping is
// performed on the quoted text.
type Value struct {
	V interface{}
}

// NewValue creates and returns a Value.
func NewValue(v interface{}) *Value {
	return &Value{V: v}
}

// Hash returns a unique identifier for the struct.
func (v *Value) Hash() uint64 {
	return quickHash(FragmentType_Value, fmt.Sprintf("%T:%v", v.V, v.V))
}

// Compile transforms the Value into an equivalent SQL representation.
func (v *Value) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(v); ok {
		return z
	}

	switch t := v.V.(type) {
	case Fragment:
		compiled = t.Compile(layout)
	case string:
		compiled = mustParse(layout.ValueQuote, t)
	default:
		compiled = fmt.Sprintf("%v", v.V)
	}

	layout.Write(v, compiled)

	return
}

// Values represents a group of values, as in the row group of an INSERT
// statement.
type Values struct {
	Values []Fragment
}

// NewValueGroup creates and returns a group of values.
func NewValueGroup(v ...Fragment) *Values {
	return &Values{Values: v}
}

// Hash returns a unique identifier for the struct.
func (vs *Values) Hash() uint64 {
	h := make([]interface{}, len(vs.Values))
	for i := range vs.Values {
		h[i] = vs.Values[i]
	}
	return quickHash(FragmentType_Values, h...)
}

// Compile transforms the Values into a parenthesized group.
func (vs *Values) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(vs); ok {
		return z
	}

	out := make([]string, len(vs.Values))
	for i := range vs.Values {
		out[i] = vs.Values[i].Compile(layout)
	}
	compiled = mustParse(layout.ClauseGroup, strings.Join(out, layout.ValueSep))

	layout.Write(vs, compiled)

	return
}

// ValueGroups represents an array of value groups.
type ValueGroups struct {
	Values []*Values
}

// JoinValueGroups creates and returns an array of value groups.
func JoinValueGroups(values ...*Values) *ValueGroups {
	return &ValueGroups{Values: values}
}

// Hash returns a unique identifier for the struct.
func (vg *ValueGroups) Hash() uint64 {
	h := make([]interface{}, len(vg.Values))
	for i := range vg.Values {
		h[i] = vg.Values[i]
	}
	return quickHash(FragmentType_ValueGroups, h...)
}

// IsEmpty reports whether the group carries no values at all.
func (vg *ValueGroups) IsEmpty() bool {
	if vg == nil || len(vg.Values) == 0 {
		return true
	}
	for i := range vg.Values {
		if len(vg.Values[i].Values) > 0 {
			return false
		}
	}
	return true
}

// Compile transforms the ValueGroups into an equivalent SQL representation.
func (vg *ValueGroups) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(vg); ok {
		return z
	}

	out := make([]string, len(vg.Values))
	for i := range vg.Values {
		out[i] = vg.Values[i].Compile(layout)
	}
	compiled = strings.Join(out, layout.ValueSep)

	layout.Write(vg, compiled)

	return
}

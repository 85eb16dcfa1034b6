package sqlgen

import (
	"strings"
)

// Columns represents an array of column expressions.
type Columns struct {
	Columns []Fragment
}

// JoinColumns creates and returns an array of column expressions.
func JoinColumns(columns ...Fragment) *Columns {
	return &Columns{Columns: columns}
}

// Hash returns a unique identifier for the struct.
func (c *Columns) Hash() uint64 {
	h := make([]interface{}, len(c.Columns))
	for i := range c.Columns {
		h[i] = c.Columns[i]
	}
	return quickHash(FragmentType_Columns, h...)
}

// IsEmpty reports whether the column list has no elements.
func (c *Columns) IsEmpty() bool {
	return c == nil || len(c.Columns) == 0
}

// Compile transforms the Columns into an equivalent SQL representation.
func (c *Columns) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(c); ok {
		return z
	}

	l := len(c.Columns)
	if l > 0 {
		out := make([]string, l)
		for i := range c.Columns {
			out[i] = c.Columns[i].Compile(layout)
		}
		compiled = strings.Join(out, layout.IdentifierSep)
	}

	layout.Write(c, compiled)

	return
}

package sqlgen

type groupByT struct {
	Columns string
}

// GroupBy represents an SQL GROUP BY clause.
type GroupBy struct {
	Columns Fragment
}

// GroupByColumns creates and returns a GroupBy over the given column
// expressions.
func GroupByColumns(columns ...Fragment) *GroupBy {
	return &GroupBy{Columns: JoinColumns(columns...)}
}

// Hash returns a unique identifier for the struct.
func (g *GroupBy) Hash() uint64 {
	return quickHash(FragmentType_GroupBy, getHash(g.Columns))
}

// Compile transforms the GroupBy into an equivalent SQL representation.
func (g *GroupBy) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(g); ok {
		return z
	}

	if g.Columns != nil {
		if columns := g.Columns.Compile(layout); columns != "" {
			compiled = mustParse(layout.GroupByLayout, groupByT{Columns: columns})
		}
	}

	layout.Write(g, compiled)

	return
}

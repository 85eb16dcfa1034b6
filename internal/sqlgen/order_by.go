package sqlgen

import (
	"strings"
)

// Order represents the order in which SQL results are sorted.
type Order uint8

// Possible values for Order.
const (
	DefaultOrder = Order(iota)
	Ascendent
	Descendent
)

// Hash returns a unique identifier for the struct.
func (o Order) Hash() uint64 {
	return quickHash(FragmentType_OrderBy, uint8(o))
}

// Compile transforms the Order into an equivalent SQL representation.
func (o Order) Compile(layout *Template) string {
	switch o {
	case Descendent:
		return layout.DescKeyword
	}
	return layout.AscKeyword
}

type sortColumnT struct {
	Column string
	Order  string
}

// SortColumn represents the column-order relation in an ORDER BY clause.
type SortColumn struct {
	Column Fragment
	Order
}

// Hash returns a unique identifier for the struct.
func (s *SortColumn) Hash() uint64 {
	return quickHash(FragmentType_SortColumn, getHash(s.Column), uint8(s.Order))
}

// Compile transforms the SortColumn into an equivalent SQL representation.
func (s *SortColumn) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(s); ok {
		return z
	}

	data := sortColumnT{
		Column: s.Column.Compile(layout),
		Order:  s.Order.Compile(layout),
	}
	compiled = mustParse(layout.SortByColumnLayout, data)

	layout.Write(s, compiled)

	return
}

// SortColumns represents the columns in an ORDER BY clause.
type SortColumns struct {
	Columns []Fragment
}

// JoinSortColumns creates and returns an array of column-order relations.
func JoinSortColumns(columns ...Fragment) *SortColumns {
	return &SortColumns{Columns: columns}
}

// Hash returns a unique identifier for the struct.
func (s *SortColumns) Hash() uint64 {
	h := make([]interface{}, len(s.Columns))
	for i := range s.Columns {
		h[i] = s.Columns[i]
	}
	return quickHash(FragmentType_SortColumns, h...)
}

// Compile transforms the SortColumns into an equivalent SQL representation.
func (s *SortColumns) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(s); ok {
		return z
	}

	out := make([]string, len(s.Columns))
	for i := range s.Columns {
		out[i] = s.Columns[i].Compile(layout)
	}
	compiled = strings.Join(out, layout.IdentifierSep)

	layout.Write(s, compiled)

	return
}

type orderByT struct {
	SortColumns string
}

// OrderBy represents an ORDER BY clause.
type OrderBy struct {
	SortColumns Fragment
}

// JoinWithOrderBy creates and returns an OrderBy using the given
// SortColumns.
func JoinWithOrderBy(sc *SortColumns) *OrderBy {
	return &OrderBy{SortColumns: sc}
}

// Hash returns a unique identifier for the struct.
func (o *OrderBy) Hash() uint64 {
	return quickHash(FragmentType_OrderBy, getHash(o.SortColumns))
}

// Compile transforms the OrderBy into an equivalent SQL representation.
func (o *OrderBy) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(o); ok {
		return z
	}

	if o.SortColumns != nil {
		if sortColumns := o.SortColumns.Compile(layout); sortColumns != "" {
			compiled = mustParse(layout.OrderByLayout, orderByT{SortColumns: sortColumns})
		}
	}

	layout.Write(o, compiled)

	return
}

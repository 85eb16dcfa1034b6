package sqlgen

import (
	"reflect"

	"github.com/sqlcraft/sqlcraft/internal/cache"
)

// Statement represents different kinds of SQL statements.
type Statement struct {
	Type
	Table        Fragment
	Columns      Fragment
	Values       Fragment
	ColumnValues Fragment
	Joins        Fragment
	Where        Fragment
	GroupBy      Fragment
	Having       Fragment
	OrderBy      Fragment

	Limit
	Offset

	SQL string
}

type statementT struct {
	Table        string
	Columns      string
	Values       string
	ColumnValues string
	Joins        string
	Where        string
	GroupBy      string
	Having       string
	OrderBy      string
	Limit
	Offset
}

func (layout *Template) doCompile(c Fragment) string {
	if c != nil && !reflect.ValueOf(c).IsNil() {
		return c.Compile(layout)
	}
	return ""
}

func getHash(h cache.Hashable) uint64 {
	if h != nil && !reflect.ValueOf(h).IsNil() {
		return h.Hash()
	}
	return 0
}

// Hash returns a unique identifier for the struct.
func (s *Statement) Hash() uint64 {
	return quickHash(FragmentType_Statement,
		uint64(s.Type),
		getHash(s.Table),
		getHash(s.Columns),
		getHash(s.Values),
		getHash(s.ColumnValues),
		getHash(s.Joins),
		getHash(s.Where),
		getHash(s.GroupBy),
		getHash(s.Having),
		getHash(s.OrderBy),
		int(s.Limit),
		int(s.Offset),
		s.SQL,
	)
}

// Compile transforms the Statement into an equivalent SQL query.
func (s *Statement) Compile(layout *Template) (compiled string) {
	if s.Type == SQL {
		// No need to hit the cache.
		return s.SQL
	}

	if z, ok := layout.Read(s); ok {
		return z
	}

	data := statementT{
		Table:        layout.doCompile(s.Table),
		Columns:      layout.doCompile(s.Columns),
		Values:       layout.doCompile(s.Values),
		ColumnValues: layout.doCompile(s.ColumnValues),
		Joins:        layout.doCompile(s.Joins),
		Where:        layout.doCompile(s.Where),
		GroupBy:      layout.doCompile(s.GroupBy),
		Having:       layout.doCompile(s.Having),
		OrderBy:      layout.doCompile(s.OrderBy),
		Limit:        s.Limit,
		Offset:       s.Offset,
	}

	switch s.Type {
	case Select:
		compiled = mustParse(layout.SelectLayout, data)
	case Insert:
		compiled = mustParse(layout.InsertLayout, data)
	case Update:
		compiled = mustParse(layout.UpdateLayout, data)
	case Delete:
		compiled = mustParse(layout.DeleteLayout, data)
	default:
		panic("Unknown statement type.")
	}

	layout.Write(s, compiled)

	return compiled
}

// RawSQL represents a raw SQL statement.
func RawSQL(s string) *Statement {
	return &Statement{
		Type: SQL,
		SQL:  s,
	}
}

// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package sqlbuilder

import (
	"github.com/sqlcraft/sqlcraft/internal/sqlgen"
)

// Inserter accumulates the clauses of an INSERT statement.
type Inserter struct {
	table   string
	columns []sqlgen.Fragment
	values  []*sqlgen.Values
}

// Columns appends column names to the column list.
func (qi *Inserter) Columns(columns ...string) *Inserter {
	for i := range columns {
		qi.columns = append(qi.columns, sqlgen.RawValue(columns[i]))
	}
	return qi
}

// Values appends one parenthesized row group. Each value is inserted
// verbatim; callers quote string literals themselves. Repeated calls
// accumulate row groups for a multi-row insert.
func (qi *Inserter) Values(values ...string) *Inserter {
	group := make([]sqlgen.Fragment, len(values))
	for i := range values {
		group[i] = sqlgen.RawValue(values[i])
	}
	qi.values = append(qi.values, sqlgen.NewValueGroup(group...))
	return qi
}

// Map sets the column list from the map's keys, in sorted order, and
// appends one row group with the corresponding values. String values are
// rendered single-quoted, any other type bare.
func (qi *Inserter) Map(values map[string]interface{}) *Inserter {
	keys := sortedKeys(values)

	qi.columns = qi.columns[:0]
	group := make([]sqlgen.Fragment, 0, len(keys))
	for _, k := range keys {
		qi.columns = append(qi.columns, sqlgen.RawValue(k))
		group = append(group, sqlgen.NewValue(values[k]))
	}
	qi.values = append(qi.values, sqlgen.NewValueGroup(group...))

	return qi
}

// Reset restores the Inserter to its empty state, keeping the table.
func (qi *Inserter) Reset() *Inserter {
	*qi = Inserter{table: qi.table}
	return qi
}

// Render produces the INSERT statement from the accumulated state.
func (qi *Inserter) Render() string {
	stmt := &sqlgen.Statement{
		Type:  sqlgen.Insert,
		Table: sqlgen.TableWithName(qi.table),
	}

	if len(qi.columns) > 0 {
		stmt.Columns = sqlgen.JoinColumns(qi.columns...)
	}
	if len(qi.values) > 0 {
		stmt.Values = sqlgen.JoinValueGroups(qi.values...)
	}

	return compile(stmt)
}

// String satisfies fmt.Stringer and is an alias for Render.
func (qi *Inserter) String() string {
	return qi.Render()
}

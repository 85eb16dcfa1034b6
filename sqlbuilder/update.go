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

// Updater accumulates the clauses of an UPDATE statement.
type Updater struct {
	table        string
	columnValues []sqlgen.Fragment
	where        []sqlgen.Fragment
	limit        sqlgen.Limit
}

// Set appends one assignment. The value is inserted verbatim; callers quote
// string literals themselves.
func (qu *Updater) Set(column string, value string) *Updater {
	qu.columnValues = append(qu.columnValues, &sqlgen.ColumnValue{
		Column:   sqlgen.RawValue(column),
		Operator: sqlgen.DefaultTemplate().AssignmentOperator,
		Value:    sqlgen.RawValue(value),
	})
	return qu
}

// SetMap appends one assignment per map entry, in sorted key order. String
// values are rendered single-quoted, any other type bare.
func (qu *Updater) SetMap(values map[string]interface{}) *Updater {
	for _, k := range sortedKeys(values) {
		qu.columnValues = append(qu.columnValues, &sqlgen.ColumnValue{
			Column:   sqlgen.RawValue(k),
			Operator: sqlgen.DefaultTemplate().AssignmentOperator,
			Value:    sqlgen.NewValue(values[k]),
		})
	}
	return qu
}

// Where appends a condition fragment. All fragments are conjoined with AND
// in append order.
func (qu *Updater) Where(condition string) *Updater {
	qu.where = append(qu.where, sqlgen.RawValue(condition))
	return qu
}

// Limit sets the limit, replacing any previous one. Zero means no limit.
func (qu *Updater) Limit(n int) *Updater {
	qu.limit = sqlgen.Limit(n)
	return qu
}

// Reset restores the Updater to its empty state, keeping the table.
func (qu *Updater) Reset() *Updater {
	*qu = Updater{table: qu.table}
	return qu
}

// Render produces the UPDATE statement from the accumulated state.
func (qu *Updater) Render() string {
	stmt := &sqlgen.Statement{
		Type:  sqlgen.Update,
		Table: sqlgen.TableWithName(qu.table),
		Limit: qu.limit,
	}

	if len(qu.columnValues) > 0 {
		stmt.ColumnValues = sqlgen.JoinColumnValues(qu.columnValues...)
	}
	if len(qu.where) > 0 {
		stmt.Where = sqlgen.WhereConditions(qu.where...)
	}

	return compile(stmt)
}

// String satisfies fmt.Stringer and is an alias for Render.
func (qu *Updater) String() string {
	return qu.Render()
}

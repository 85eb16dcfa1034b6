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

// Deleter accumulates the clauses of a DELETE statement.
type Deleter struct {
	table string
	where []sqlgen.Fragment
	limit sqlgen.Limit
}

// Where appends a condition fragment. All fragments are conjoined with AND
// in append order.
func (qd *Deleter) Where(condition string) *Deleter {
	qd.where = append(qd.where, sqlgen.RawValue(condition))
	return qd
}

// Limit sets the limit, replacing any previous one. Zero means no limit.
func (qd *Deleter) Limit(n int) *Deleter {
	qd.limit = sqlgen.Limit(n)
	return qd
}

// Reset restores the Deleter to its empty state, keeping the table.
func (qd *Deleter) Reset() *Deleter {
	*qd = Deleter{table: qd.table}
	return qd
}

// Render produces the DELETE statement from the accumulated state.
func (qd *Deleter) Render() string {
	stmt := &sqlgen.Statement{
		Type:  sqlgen.Delete,
		Table: sqlgen.TableWithName(qd.table),
		Limit: qd.limit,
	}

	if len(qd.where) > 0 {
		stmt.Where = sqlgen.WhereConditions(qd.where...)
	}

	return compile(stmt)
}

// String satisfies fmt.Stringer and is an alias for Render.
func (qd *Deleter) String() string {
	return qd.Render()
}

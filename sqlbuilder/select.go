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

// Selector accumulates the clauses of a SELECT statement.
type Selector struct {
	table   *sqlgen.Table
	columns []sqlgen.Fragment
	joins   []*sqlgen.Join
	where   []sqlgen.Fragment
	groupBy []sqlgen.Fragment
	having  []sqlgen.Fragment
	orderBy []sqlgen.Fragment
	limit   sqlgen.Limit
	offset  sqlgen.Offset
}

// Select appends column expressions to the select list. Repeated calls
// accumulate; an empty select list renders as "*".
func (qs *Selector) Select(columns ...string) *Selector {
	for i := range columns {
		qs.columns = append(qs.columns, sqlgen.RawValue(columns[i]))
	}
	return qs
}

// From sets the source table, replacing any previous one. An optional alias
// is rendered in "table alias" form.
func (qs *Selector) From(table string, alias ...string) *Selector {
	qs.table = sqlgen.TableWithName(table)
	if len(alias) > 0 {
		qs.table.Alias = alias[0]
	}
	return qs
}

// Join appends an INNER JOIN clause with the given raw ON condition.
func (qs *Selector) Join(table string, on string) *Selector {
	return qs.JoinOn(JoinInner, table, "", on)
}

// LeftJoin appends a LEFT JOIN clause.
func (qs *Selector) LeftJoin(table string, on string) *Selector {
	return qs.JoinOn(JoinLeft, table, "", on)
}

// RightJoin appends a RIGHT JOIN clause.
func (qs *Selector) RightJoin(table string, on string) *Selector {
	return qs.JoinOn(JoinRight, table, "", on)
}

// FullOuterJoin appends a FULL OUTER JOIN clause.
func (qs *Selector) FullOuterJoin(table string, on string) *Selector {
	return qs.JoinOn(JoinFullOuter, table, "", on)
}

// JoinOn appends a JOIN clause of the given kind. The alias may be empty;
// the ON condition is inserted verbatim.
func (qs *Selector) JoinOn(kind JoinType, table string, alias string, on string) *Selector {
	join := &sqlgen.Join{
		Type:  kind.keyword(),
		Table: &sqlgen.Table{Name: table, Alias: alias},
		On:    sqlgen.RawValue(on),
	}
	qs.joins = append(qs.joins, join)
	return qs
}

// Where appends a condition fragment. All fragments are conjoined with AND
// in append order.
func (qs *Selector) Where(condition string) *Selector {
	qs.where = append(qs.where, sqlgen.RawValue(condition))
	return qs
}

// GroupBy appends column expressions to the GROUP BY clause.
func (qs *Selector) GroupBy(columns ...string) *Selector {
	for i := range columns {
		qs.groupBy = append(qs.groupBy, sqlgen.RawValue(columns[i]))
	}
	return qs
}

// Having appends a condition fragment to the HAVING clause.
func (qs *Selector) Having(condition string) *Selector {
	qs.having = append(qs.having, sqlgen.RawValue(condition))
	return qs
}

// OrderBy appends a column expression paired with a sort direction. The
// direction defaults to Ascendent when omitted.
func (qs *Selector) OrderBy(column string, order ...Order) *Selector {
	direction := Ascendent
	if len(order) > 0 {
		direction = order[0]
	}
	qs.orderBy = append(qs.orderBy, &sqlgen.SortColumn{
		Column: sqlgen.RawValue(column),
		Order:  direction.order(),
	})
	return qs
}

// Limit sets the limit, replacing any previous one. Zero means no limit.
func (qs *Selector) Limit(n int) *Selector {
	qs.limit = sqlgen.Limit(n)
	return qs
}

// Offset sets the offset, replacing any previous one. It is only rendered
// when non-zero.
func (qs *Selector) Offset(n int) *Selector {
	qs.offset = sqlgen.Offset(n)
	return qs
}

// Reset restores the Selector to its empty state.
func (qs *Selector) Reset() *Selector {
	*qs = Selector{}
	return qs
}

// Render produces the SELECT statement from the accumulated state. It does
// not mutate the Selector and yields identical results until the next
// mutation.
func (qs *Selector) Render() string {
	stmt := &sqlgen.Statement{
		Type:   sqlgen.Select,
		Limit:  qs.limit,
		Offset: qs.offset,
	}

	if qs.table != nil {
		stmt.Table = qs.table
	}
	if len(qs.columns) > 0 {
		stmt.Columns = sqlgen.JoinColumns(qs.columns...)
	}
	if len(qs.joins) > 0 {
		stmt.Joins = sqlgen.JoinConditions(qs.joins...)
	}
	if len(qs.where) > 0 {
		stmt.Where = sqlgen.WhereConditions(qs.where...)
	}
	if len(qs.groupBy) > 0 {
		stmt.GroupBy = sqlgen.GroupByColumns(qs.groupBy...)
	}
	if len(qs.having) > 0 {
		stmt.Having = sqlgen.HavingConditions(qs.having...)
	}
	if len(qs.orderBy) > 0 {
		stmt.OrderBy = sqlgen.JoinWithOrderBy(sqlgen.JoinSortColumns(qs.orderBy...))
	}

	return compile(stmt)
}

// String satisfies fmt.Stringer and is an alias for Render.
func (qs *Selector) String() string {
	return qs.Render()
}

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

// Package sqlbuilder provides fluent accumulators that assemble SQL
// statements from plain string fragments.
//
// Every mutating method returns the same builder, so calls can be chained;
// a terminal Render joins the accumulated fragments in a fixed clause order.
// Nothing is validated, quoted or escaped: every table name, column
// expression and condition is inserted into the output verbatim, and a
// builder never fails. Builders are plain mutable values with no internal
// locking; concurrent mutation of one instance must be serialized by the
// caller.
//
//	q := sqlbuilder.Select("id", "name").
//		From("users").
//		Where("active = 1").
//		OrderBy("id", sqlbuilder.Descendent).
//		Limit(5)
//
//	fmt.Println(q.Render())
//	// SELECT id, name FROM users WHERE active = 1 ORDER BY id DESC LIMIT 5
package sqlbuilder

import (
	"time"

	"github.com/sqlcraft/sqlcraft"
	"github.com/sqlcraft/sqlcraft/internal/sqlgen"
)

// JoinType represents the kind of a JOIN clause.
type JoinType uint8

// Join kinds. JoinInner is the default.
const (
	JoinInner = JoinType(iota)
	JoinLeft
	JoinRight
	JoinFullOuter
)

var joinKeywords = map[JoinType]string{
	JoinInner:     "INNER",
	JoinLeft:      "LEFT",
	JoinRight:     "RIGHT",
	JoinFullOuter: "FULL OUTER",
}

// String returns the full SQL keyword for the join kind, such as "INNER
// JOIN" or "FULL OUTER JOIN".
func (t JoinType) String() string {
	return t.keyword() + " JOIN"
}

func (t JoinType) keyword() string {
	if k, ok := joinKeywords[t]; ok {
		return k
	}
	return joinKeywords[JoinInner]
}

// Order represents the direction of an ORDER BY expression.
type Order uint8

// Sort directions. Ascendent is the default.
const (
	Ascendent = Order(iota)
	Descendent
)

// String returns the SQL keyword for the direction.
func (o Order) String() string {
	if o == Descendent {
		return "DESC"
	}
	return "ASC"
}

func (o Order) order() sqlgen.Order {
	if o == Descendent {
		return sqlgen.Descendent
	}
	return sqlgen.Ascendent
}

// Select creates a Selector with the given column expressions.
func Select(columns ...string) *Selector {
	s := &Selector{}
	return s.Select(columns...)
}

// SelectFrom creates a Selector pointed at the given table, selecting all
// columns.
func SelectFrom(table string) *Selector {
	s := &Selector{}
	return s.From(table)
}

// InsertInto creates an Inserter pointed at the given table.
func InsertInto(table string) *Inserter {
	return &Inserter{table: table}
}

// Update creates an Updater pointed at the given table.
func Update(table string) *Updater {
	return &Updater{table: table}
}

// DeleteFrom creates a Deleter pointed at the given table.
func DeleteFrom(table string) *Deleter {
	return &Deleter{table: table}
}

func compile(stmt *sqlgen.Statement) string {
	start := time.Now()

	compiled := stmt.Compile(sqlgen.DefaultTemplate())

	sqlcraft.LC().Log(&sqlcraft.QueryStatus{
		Query: compiled,
		Start: start,
		End:   time.Now(),
	})

	return compiled
}

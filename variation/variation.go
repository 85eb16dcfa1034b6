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

// Package variation produces fixed lists of ready-made query shapes from
// plain arguments or a declarative Config.
//
// Everything here is pure formatting: each generator interpolates its inputs
// into a fixed set of patterns and returns the resulting strings, verbatim
// and unescaped. Map-driven inputs are iterated in sorted key order so
// output is deterministic.
package variation

import (
	"fmt"
	"sort"
	"strings"
)

// formatValue renders a value the way generated statements expect it:
// strings single-quoted, everything else bare. No escaping is performed.
func formatValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprint(v)
}

// quoteValue always single-quotes the value's string form.
func quoteValue(v interface{}) string {
	return "'" + fmt.Sprint(v) + "'"
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// equalityClause renders "k = v" pairs in sorted key order, conjoined with
// AND. The format callback decides how values are rendered.
func equalityClause(conditions map[string]interface{}, format func(interface{}) string) string {
	pairs := make([]string, 0, len(conditions))
	for _, k := range sortedKeys(conditions) {
		pairs = append(pairs, fmt.Sprintf("%s = %s", k, format(conditions[k])))
	}
	return strings.Join(pairs, " AND ")
}

// SelectVariations generates SELECT query shapes for a table: the base
// select (with optional WHERE conditions, values always quoted), a COUNT,
// a DISTINCT on the first column, the base select ordered by the first
// column, and the base select limited to 10 rows. An empty column list
// selects "*".
func SelectVariations(table string, columns []string, conditions map[string]interface{}) []string {
	cols := "*"
	if len(columns) > 0 {
		cols = strings.Join(columns, ", ")
	}

	base := fmt.Sprintf("SELECT %s FROM %s", cols, table)
	if len(conditions) > 0 {
		base += " WHERE " + equalityClause(conditions, quoteValue)
	}

	variations := []string{
		base,
		fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}

	if len(columns) > 0 {
		variations = append(variations,
			fmt.Sprintf("SELECT DISTINCT %s FROM %s", columns[0], table),
			base+fmt.Sprintf(" ORDER BY %s", columns[0]),
		)
	}

	variations = append(variations, base+" LIMIT 10")

	return variations
}

// InsertVariations generates INSERT query shapes for a row of data: the
// basic insert, a MySQL-style ON DUPLICATE KEY UPDATE upsert, a SQLite-style
// INSERT OR REPLACE, and an insert-from-select. Columns render in sorted
// order.
func InsertVariations(table string, data map[string]interface{}) []string {
	keys := sortedKeys(data)

	values := make([]string, 0, len(keys))
	updates := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, formatValue(data[k]))
		updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", k, k))
	}

	cols := strings.Join(keys, ", ")
	vals := strings.Join(values, ", ")

	return []string{
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, vals),
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s", table, cols, vals, strings.Join(updates, ", ")),
		fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)", table, cols, vals),
		fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM temp_table WHERE condition = 'value'", table, cols, cols),
	}
}

// UpdateVariations generates UPDATE query shapes for a set of assignments
// and conditions: the basic update, an update joined against another table,
// and an update whose first (sorted) assignment column is set from a
// subquery.
func UpdateVariations(table string, data map[string]interface{}, conditions map[string]interface{}) []string {
	keys := sortedKeys(data)

	assignments := make([]string, 0, len(keys))
	for _, k := range keys {
		assignments = append(assignments, fmt.Sprintf("%s = %s", k, formatValue(data[k])))
	}

	set := strings.Join(assignments, ", ")
	where := equalityClause(conditions, formatValue)

	variations := []string{
		fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, set, where),
		fmt.Sprintf("UPDATE %s t1 JOIN other_table t2 ON t1.id = t2.ref_id SET %s WHERE %s", table, set, where),
	}

	if len(keys) > 0 {
		variations = append(variations,
			fmt.Sprintf("UPDATE %s SET %s = (SELECT value FROM lookup_table WHERE id = %s.lookup_id) WHERE %s", table, keys[0], table, where))
	}

	return variations
}

// DeleteVariations generates DELETE query shapes for a set of conditions:
// the basic delete, a delete joined against another table, a delete with an
// IN-subquery, and a TRUNCATE.
func DeleteVariations(table string, conditions map[string]interface{}) []string {
	where := equalityClause(conditions, formatValue)

	return []string{
		fmt.Sprintf("DELETE FROM %s WHERE %s", table, where),
		fmt.Sprintf("DELETE t1 FROM %s t1 JOIN other_table t2 ON t1.id = t2.ref_id WHERE %s", table, where),
		fmt.Sprintf("DELETE FROM %s WHERE id IN (SELECT id FROM temp_table WHERE %s)", table, where),
		fmt.Sprintf("TRUNCATE TABLE %s", table),
	}
}

// AnalyticalQueries generates aggregate and window-function query shapes
// over one grouping column and one numeric column: COUNT/SUM/AVG group-bys,
// a ROW_NUMBER partition, a RANK ordering and a daily time series on
// created_at.
func AnalyticalQueries(table string, groupColumn string, aggregateColumn string) []string {
	return []string{
		fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s", groupColumn, table, groupColumn),
		fmt.Sprintf("SELECT %s, SUM(%s) FROM %s GROUP BY %s", groupColumn, aggregateColumn, table, groupColumn),
		fmt.Sprintf("SELECT %s, AVG(%s) FROM %s GROUP BY %s", groupColumn, aggregateColumn, table, groupColumn),
		fmt.Sprintf("SELECT %s, %s, ROW_NUMBER() OVER (PARTITION BY %s ORDER BY %s) as row_num FROM %s", groupColumn, aggregateColumn, groupColumn, aggregateColumn, table),
		fmt.Sprintf("SELECT %s, %s, RANK() OVER (ORDER BY %s DESC) as rank FROM %s", groupColumn, aggregateColumn, aggregateColumn, table),
		fmt.Sprintf("SELECT DATE(created_at) as date, COUNT(*) FROM %s GROUP BY DATE(created_at) ORDER BY date DESC", table),
	}
}

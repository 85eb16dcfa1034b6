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

package variation

import (
	"fmt"
	"strings"

	"github.com/sqlcraft/sqlcraft/sqlbuilder"
)

// Config is the declarative description of a table the config-driven
// generators work from.
type Config struct {
	Table   string
	Columns []string

	// PrimaryKey defaults to "id" when empty.
	PrimaryKey string

	// DateColumn defaults to "created_at" when empty.
	DateColumn string

	GroupColumns   []string
	NumericColumns []string
}

func (c Config) primaryKey() string {
	if c.PrimaryKey == "" {
		return "id"
	}
	return c.PrimaryKey
}

func (c Config) dateColumn() string {
	if c.DateColumn == "" {
		return "created_at"
	}
	return c.DateColumn
}

// CRUD holds per-operation lists of generated query shapes.
type CRUD struct {
	Select []string
	Insert []string
	Update []string
	Delete []string
}

// CRUDVariations generates parameterized ("?" placeholder) CRUD query shapes
// for the configured table. Insert and update shapes require a non-empty
// column list.
func CRUDVariations(cfg Config) CRUD {
	table := cfg.Table
	pk := cfg.primaryKey()

	var crud CRUD

	crud.Select = append(crud.Select,
		fmt.Sprintf("SELECT * FROM %s", table),
	)
	if len(cfg.Columns) > 0 {
		crud.Select = append(crud.Select,
			fmt.Sprintf("SELECT %s FROM %s", strings.Join(cfg.Columns, ", "), table))
	}
	crud.Select = append(crud.Select,
		fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
		fmt.Sprintf("SELECT * FROM %s ORDER BY %s DESC LIMIT 10", table, pk),
	)
	if len(cfg.Columns) > 0 {
		crud.Select = append(crud.Select,
			fmt.Sprintf("SELECT DISTINCT %s FROM %s", cfg.Columns[0], table))
	}

	if len(cfg.Columns) > 0 {
		cols := strings.Join(cfg.Columns, ", ")
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cfg.Columns)), ", ")

		crud.Insert = append(crud.Insert,
			fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, placeholders),
			fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (%s)", table, cols, placeholders),
			fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM temp_%s", table, cols, cols, table),
		)

		assignments := make([]string, 0, len(cfg.Columns))
		for _, col := range cfg.Columns {
			assignments = append(assignments, col+" = ?")
		}
		crud.Update = append(crud.Update,
			fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(assignments, ", "), pk),
			fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s IN (SELECT %s FROM temp_ids)", table, cfg.Columns[0], pk, pk),
		)
	}

	crud.Delete = append(crud.Delete,
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, pk),
		fmt.Sprintf("DELETE FROM %s WHERE %s < ?", table, cfg.dateColumn()),
		fmt.Sprintf("DELETE FROM %s WHERE %s IN (?, ?, ?)", table, pk),
	)

	return crud
}

// AnalyticalVariations generates analytical query shapes for the configured
// table: time-based rollups on the date column, per-group-column counts, per
// numeric-column aggregates and rankings, and two window-function queries
// combining the first group column with the first numeric column.
func AnalyticalVariations(cfg Config) []string {
	table := cfg.Table
	date := cfg.dateColumn()

	queries := []string{
		fmt.Sprintf("SELECT DATE(%s) as date, COUNT(*) FROM %s GROUP BY DATE(%s)", date, table, date),
		fmt.Sprintf("SELECT YEAR(%s) as year, MONTH(%s) as month, COUNT(*) FROM %s GROUP BY YEAR(%s), MONTH(%s)", date, date, table, date, date),
		fmt.Sprintf("SELECT * FROM %s WHERE %s >= DATE_SUB(NOW(), INTERVAL 30 DAY)", table, date),
	}

	for _, col := range cfg.GroupColumns {
		queries = append(queries,
			fmt.Sprintf("SELECT %s, COUNT(*) as count FROM %s GROUP BY %s ORDER BY count DESC", col, table, col),
			fmt.Sprintf("SELECT %s, COUNT(*) as count FROM %s GROUP BY %s HAVING count > 10", col, table, col),
		)
	}

	for _, col := range cfg.NumericColumns {
		queries = append(queries,
			fmt.Sprintf("SELECT AVG(%s), MIN(%s), MAX(%s), SUM(%s) FROM %s", col, col, col, col, table),
			fmt.Sprintf("SELECT %s, ROW_NUMBER() OVER (ORDER BY %s DESC) as rank FROM %s", col, col, table),
		)
	}

	if len(cfg.GroupColumns) > 0 && len(cfg.NumericColumns) > 0 {
		group, num := cfg.GroupColumns[0], cfg.NumericColumns[0]
		queries = append(queries,
			fmt.Sprintf("SELECT %s, %s, AVG(%s) OVER (PARTITION BY %s) as avg_by_group FROM %s", group, num, num, group, table),
			fmt.Sprintf("SELECT %s, %s, RANK() OVER (PARTITION BY %s ORDER BY %s DESC) as rank_in_group FROM %s", group, num, group, num, table),
		)
	}

	return queries
}

// Join describes one join target for JoinVariations.
type Join struct {
	Table string
	On    string
	Kind  sqlbuilder.JoinType
}

// JoinVariations generates, per join target, a star select, a
// qualified-columns select and a COUNT over the joined tables.
func JoinVariations(mainTable string, joins []Join) []string {
	queries := make([]string, 0, len(joins)*3)

	for _, j := range joins {
		clause := fmt.Sprintf("%s %s %s ON %s", mainTable, j.Kind, j.Table, j.On)

		queries = append(queries,
			fmt.Sprintf("SELECT * FROM %s", clause),
			fmt.Sprintf("SELECT %s.*, %s.name FROM %s", mainTable, j.Table, clause),
			fmt.Sprintf("SELECT COUNT(*) FROM %s", clause),
		)
	}

	return queries
}

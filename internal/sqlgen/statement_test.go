package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementSelect(t *testing.T) {
	assert := assert.New(t)

	stmt := &Statement{Type: Select}
	assert.Equal(`SELECT *`, stmt.Compile(DefaultTemplate()))

	stmt = &Statement{
		Type:  Select,
		Table: TableWithName("users"),
	}
	assert.Equal(`SELECT * FROM users`, stmt.Compile(DefaultTemplate()))

	stmt = &Statement{
		Type:    Select,
		Table:   TableWithName("users"),
		Columns: JoinColumns(RawValue("id"), RawValue("name")),
		Where:   WhereConditions(RawValue("active = 1")),
		OrderBy: JoinWithOrderBy(JoinSortColumns(
			&SortColumn{Column: RawValue("id"), Order: Descendent},
		)),
		Limit: 5,
	}
	assert.Equal(`SELECT id, name FROM users WHERE active = 1 ORDER BY id DESC LIMIT 5`, stmt.Compile(DefaultTemplate()))

	stmt = &Statement{
		Type:    Select,
		Table:   &Table{Name: "users", Alias: "u"},
		Columns: JoinColumns(RawValue("u.name"), RawValue("COUNT(o.id)")),
		Joins: JoinConditions(&Join{
			Type:  "LEFT",
			Table: &Table{Name: "orders", Alias: "o"},
			On:    RawValue("u.id = o.user_id"),
		}),
		GroupBy: GroupByColumns(RawValue("u.name")),
		Having:  HavingConditions(RawValue("COUNT(o.id) > 3")),
		Offset:  20,
		Limit:   10,
	}
	assert.Equal(
		`SELECT u.name, COUNT(o.id) FROM users u LEFT JOIN orders o ON u.id = o.user_id GROUP BY u.name HAVING COUNT(o.id) > 3 LIMIT 10 OFFSET 20`,
		stmt.Compile(DefaultTemplate()),
	)
}

func TestStatementInsert(t *testing.T) {
	stmt := &Statement{
		Type:    Insert,
		Table:   TableWithName("products"),
		Columns: JoinColumns(RawValue("name"), RawValue("price")),
		Values: JoinValueGroups(
			NewValueGroup(NewValue("Laptop"), NewValue(999.99)),
			NewValueGroup(NewValue("Mouse"), NewValue(25)),
		),
	}
	assert.Equal(t,
		`INSERT INTO products (name, price) VALUES ('Laptop', 999.99), ('Mouse', 25)`,
		stmt.Compile(DefaultTemplate()),
	)
}

func TestStatementUpdate(t *testing.T) {
	stmt := &Statement{
		Type:  Update,
		Table: TableWithName("orders"),
		ColumnValues: JoinColumnValues(
			&ColumnValue{Column: RawValue("status"), Operator: "=", Value: NewValue("shipped")},
		),
		Where: WhereConditions(RawValue("id = 123")),
	}
	assert.Equal(t, `UPDATE orders SET status = 'shipped' WHERE id = 123`, stmt.Compile(DefaultTemplate()))
}

func TestStatementDelete(t *testing.T) {
	stmt := &Statement{
		Type:  Delete,
		Table: TableWithName("logs"),
		Where: WhereConditions(RawValue("created_at < '2024-01-01'")),
		Limit: 100,
	}
	assert.Equal(t, `DELETE FROM logs WHERE created_at < '2024-01-01' LIMIT 100`, stmt.Compile(DefaultTemplate()))
}

func TestStatementRawSQL(t *testing.T) {
	stmt := RawSQL(`SELECT * FROM (SELECT 1) AS t`)
	assert.Equal(t, `SELECT * FROM (SELECT 1) AS t`, stmt.Compile(DefaultTemplate()))
}

func TestStatementHash(t *testing.T) {
	assert := assert.New(t)

	a := &Statement{Type: Select, Table: TableWithName("users")}
	b := &Statement{Type: Select, Table: TableWithName("users")}
	c := &Statement{Type: Delete, Table: TableWithName("users")}

	assert.Equal(a.Hash(), b.Hash())
	assert.NotEqual(a.Hash(), c.Hash())
}

func TestStatementCompileIsCached(t *testing.T) {
	stmt := &Statement{
		Type:  Select,
		Table: TableWithName("cache_probe"),
		Where: WhereConditions(RawValue("id = 1")),
	}

	first := stmt.Compile(DefaultTemplate())

	cached, ok := DefaultTemplate().Read(stmt)
	assert.True(t, ok)
	assert.Equal(t, first, cached)
	assert.Equal(t, first, stmt.Compile(DefaultTemplate()))
}

func BenchmarkStatementCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		stmt := &Statement{
			Type:    Select,
			Table:   TableWithName("users"),
			Columns: JoinColumns(RawValue("id"), RawValue("name")),
			Where:   WhereConditions(RawValue("active = 1")),
			Limit:   5,
		}
		_ = stmt.Compile(DefaultTemplate())
	}
}

package stencil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft"
)

func TestRenderBuiltins(t *testing.T) {
	assert := assert.New(t)

	e := New()

	{
		q, err := e.Render(BasicSelect, map[string]interface{}{
			"columns": "id, name",
			"table":   "users",
		})
		assert.NoError(err)
		assert.Equal(`SELECT id, name FROM users`, q)
	}

	{
		q, err := e.Render(FilteredSelect, map[string]interface{}{
			"columns":    "id, name, email",
			"table":      "users",
			"conditions": `active = 1 AND role = 'admin'`,
		})
		assert.NoError(err)
		assert.Equal(`SELECT id, name, email FROM users WHERE active = 1 AND role = 'admin'`, q)
	}

	{
		q, err := e.Render(PaginatedSelect, map[string]interface{}{
			"columns":  "*",
			"table":    "orders",
			"order_by": "created_at DESC",
			"limit":    25,
			"offset":   50,
		})
		assert.NoError(err)
		assert.Equal(`SELECT * FROM orders ORDER BY created_at DESC LIMIT 25 OFFSET 50`, q)
	}

	{
		q, err := e.Render(BasicInsert, map[string]interface{}{
			"table":   "products",
			"columns": "name, price",
			"values":  `'Laptop', 999.99`,
		})
		assert.NoError(err)
		assert.Equal(`INSERT INTO products (name, price) VALUES ('Laptop', 999.99)`, q)
	}

	{
		q, err := e.Render(JoinedDelete, map[string]interface{}{
			"table":      "logs",
			"joins":      "INNER JOIN sessions s ON s.id = logs.session_id",
			"conditions": "s.expired = 1",
		})
		assert.NoError(err)
		assert.Equal(`DELETE logs FROM logs INNER JOIN sessions s ON s.id = logs.session_id WHERE s.expired = 1`, q)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	e := New()

	q, err := e.Render("no_such_template", map[string]interface{}{"table": "users"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlcraft.ErrUnknownTemplate)
	assert.Empty(t, q)
}

func TestSafeSubstitution(t *testing.T) {
	assert := assert.New(t)

	e := New()

	// Placeholders without a matching variable stay verbatim, in their
	// original spelling.
	q, err := e.Render(FilteredSelect, map[string]interface{}{
		"columns": "id",
		"table":   "users",
	})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM users WHERE $conditions`, q)

	e.Register("braced", "SELECT ${columns} FROM ${table} WHERE ${conditions}")
	q, err = e.Render("braced", map[string]interface{}{"columns": "id"})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM ${table} WHERE ${conditions}`, q)

	// Variables with no corresponding placeholder are ignored.
	q, err = e.Render(BasicSelect, map[string]interface{}{
		"columns": "id",
		"table":   "users",
		"extra":   "ignored",
	})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM users`, q)
}

func TestNoRecursiveExpansion(t *testing.T) {
	e := New()

	// Inserted values are never re-scanned for further placeholders.
	q, err := e.Render(BasicSelect, map[string]interface{}{
		"columns": "$table",
		"table":   "users",
	})
	assert.NoError(t, err)
	assert.Equal(t, `SELECT $table FROM users`, q)
}

func TestDollarEscape(t *testing.T) {
	assert := assert.New(t)

	e := New()
	e.Register("escaped", "SELECT * FROM payments WHERE amount > $$100 AND owner = $owner")

	q, err := e.Render("escaped", map[string]interface{}{"owner": "'joe'"})
	assert.NoError(err)
	assert.Equal(`SELECT * FROM payments WHERE amount > $100 AND owner = 'joe'`, q)

	// A "$" followed by anything that can't start an identifier is literal.
	e.Register("literal", "SELECT 1 AS $1, price$ FROM t")
	q, err = e.Render("literal", nil)
	assert.NoError(err)
	assert.Equal(`SELECT 1 AS $1, price$ FROM t`, q)
}

func TestRenderStrict(t *testing.T) {
	assert := assert.New(t)

	e := New()

	q, err := e.RenderStrict(BasicSelect, map[string]interface{}{
		"columns": "id",
		"table":   "users",
	})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM users`, q)

	q, err = e.RenderStrict(FilteredSelect, map[string]interface{}{
		"columns": "id",
		"table":   "users",
	})
	assert.Error(err)
	assert.ErrorIs(err, sqlcraft.ErrMissingVariable)
	assert.Empty(q)
}

func TestRegisterOverwrite(t *testing.T) {
	assert := assert.New(t)

	e := New()

	e.Register("report", "SELECT * FROM $table")
	e.Register("report", "SELECT id FROM $table")

	q, err := e.Render("report", map[string]interface{}{"table": "users"})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM users`, q)
}

func TestCustomTemplates(t *testing.T) {
	assert := assert.New(t)

	e := New()

	e.Register("daily_sales",
		"SELECT DATE($date_column) as date, SUM($amount_column) as daily_total FROM $table WHERE $date_column >= DATE_SUB(NOW(), INTERVAL $days DAY) GROUP BY DATE($date_column)")

	q, err := e.Render("daily_sales", map[string]interface{}{
		"date_column":   "created_at",
		"amount_column": "total_amount",
		"table":         "orders",
		"days":          30,
	})
	assert.NoError(err)
	assert.Equal(`SELECT DATE(created_at) as date, SUM(total_amount) as daily_total FROM orders WHERE created_at >= DATE_SUB(NOW(), INTERVAL 30 DAY) GROUP BY DATE(created_at)`, q)

	e.Register("top_customers",
		"SELECT $customer_columns, SUM($amount_column) as total_spent FROM $table GROUP BY $customer_id ORDER BY total_spent DESC LIMIT $limit")

	q, err = e.Render("top_customers", map[string]interface{}{
		"customer_columns": "customer_id, customer_name, customer_email",
		"amount_column":    "total_amount",
		"table":            "orders",
		"customer_id":      "customer_id",
		"limit":            10,
	})
	assert.NoError(err)
	assert.Equal(`SELECT customer_id, customer_name, customer_email, SUM(total_amount) as total_spent FROM orders GROUP BY customer_id ORDER BY total_spent DESC LIMIT 10`, q)
}

func TestTemplates(t *testing.T) {
	e := New()

	names := e.Templates()
	assert.Len(t, names, len(builtinTemplates))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, BasicSelect)
	assert.Contains(t, names, CreateIndex)

	e.Register("zz_custom", "SELECT 1")
	assert.Len(t, e.Templates(), len(builtinTemplates)+1)

	// The default engine is independent from locally created ones.
	assert.NotContains(t, Templates(), "zz_custom")
}

func TestDefaultEngine(t *testing.T) {
	assert := assert.New(t)

	Register("default_engine_probe", "SELECT $col FROM probe")

	q, err := Render("default_engine_probe", map[string]interface{}{"col": "id"})
	assert.NoError(err)
	assert.Equal(`SELECT id FROM probe`, q)

	_, err = RenderStrict("default_engine_probe", nil)
	assert.ErrorIs(err, sqlcraft.ErrMissingVariable)

	pattern, ok := Default().Lookup("default_engine_probe")
	assert.True(ok)
	assert.Equal("SELECT $col FROM probe", pattern)
}

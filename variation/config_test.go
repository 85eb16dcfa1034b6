package variation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlcraft/sqlcraft/sqlbuilder"
)

func TestCRUDVariations(t *testing.T) {
	assert := assert.New(t)

	crud := CRUDVariations(Config{
		Table:      "products",
		Columns:    []string{"name", "price", "category", "description"},
		PrimaryKey: "product_id",
	})

	assert.Equal([]string{
		`SELECT * FROM products`,
		`SELECT name, price, category, description FROM products`,
		`SELECT COUNT(*) FROM products`,
		`SELECT * FROM products ORDER BY product_id DESC LIMIT 10`,
		`SELECT DISTINCT name FROM products`,
	}, crud.Select)

	assert.Equal([]string{
		`INSERT INTO products (name, price, category, description) VALUES (?, ?, ?, ?)`,
		`INSERT OR IGNORE INTO products (name, price, category, description) VALUES (?, ?, ?, ?)`,
		`INSERT INTO products (name, price, category, description) SELECT name, price, category, description FROM temp_products`,
	}, crud.Insert)

	assert.Equal([]string{
		`UPDATE products SET name = ?, price = ?, category = ?, description = ? WHERE product_id = ?`,
		`UPDATE products SET name = ? WHERE product_id IN (SELECT product_id FROM temp_ids)`,
	}, crud.Update)

	assert.Equal([]string{
		`DELETE FROM products WHERE product_id = ?`,
		`DELETE FROM products WHERE created_at < ?`,
		`DELETE FROM products WHERE product_id IN (?, ?, ?)`,
	}, crud.Delete)
}

func TestCRUDVariationsDefaults(t *testing.T) {
	crud := CRUDVariations(Config{Table: "events"})

	// Without columns there are no insert or update shapes; the primary key
	// defaults to "id" and the date column to "created_at".
	assert.Equal(t, []string{
		`SELECT * FROM events`,
		`SELECT COUNT(*) FROM events`,
		`SELECT * FROM events ORDER BY id DESC LIMIT 10`,
	}, crud.Select)
	assert.Empty(t, crud.Insert)
	assert.Empty(t, crud.Update)
	assert.Equal(t, []string{
		`DELETE FROM events WHERE id = ?`,
		`DELETE FROM events WHERE created_at < ?`,
		`DELETE FROM events WHERE id IN (?, ?, ?)`,
	}, crud.Delete)
}

func TestAnalyticalVariations(t *testing.T) {
	queries := AnalyticalVariations(Config{
		Table:          "api_logs",
		DateColumn:     "timestamp",
		GroupColumns:   []string{"endpoint"},
		NumericColumns: []string{"response_time_ms"},
	})

	assert.Equal(t, []string{
		`SELECT DATE(timestamp) as date, COUNT(*) FROM api_logs GROUP BY DATE(timestamp)`,
		`SELECT YEAR(timestamp) as year, MONTH(timestamp) as month, COUNT(*) FROM api_logs GROUP BY YEAR(timestamp), MONTH(timestamp)`,
		`SELECT * FROM api_logs WHERE timestamp >= DATE_SUB(NOW(), INTERVAL 30 DAY)`,
		`SELECT endpoint, COUNT(*) as count FROM api_logs GROUP BY endpoint ORDER BY count DESC`,
		`SELECT endpoint, COUNT(*) as count FROM api_logs GROUP BY endpoint HAVING count > 10`,
		`SELECT AVG(response_time_ms), MIN(response_time_ms), MAX(response_time_ms), SUM(response_time_ms) FROM api_logs`,
		`SELECT response_time_ms, ROW_NUMBER() OVER (ORDER BY response_time_ms DESC) as rank FROM api_logs`,
		`SELECT endpoint, response_time_ms, AVG(response_time_ms) OVER (PARTITION BY endpoint) as avg_by_group FROM api_logs`,
		`SELECT endpoint, response_time_ms, RANK() OVER (PARTITION BY endpoint ORDER BY response_time_ms DESC) as rank_in_group FROM api_logs`,
	}, queries)
}

func TestAnalyticalVariationsTimeOnly(t *testing.T) {
	queries := AnalyticalVariations(Config{Table: "visits"})

	assert.Len(t, queries, 3)
	assert.Equal(t, `SELECT DATE(created_at) as date, COUNT(*) FROM visits GROUP BY DATE(created_at)`, queries[0])
}

func TestJoinVariations(t *testing.T) {
	queries := JoinVariations("users", []Join{
		{Table: "profiles", On: "users.id = profiles.user_id", Kind: sqlbuilder.JoinLeft},
		{Table: "orders", On: "users.id = orders.user_id"},
	})

	assert.Equal(t, []string{
		`SELECT * FROM users LEFT JOIN profiles ON users.id = profiles.user_id`,
		`SELECT users.*, profiles.name FROM users LEFT JOIN profiles ON users.id = profiles.user_id`,
		`SELECT COUNT(*) FROM users LEFT JOIN profiles ON users.id = profiles.user_id`,
		`SELECT * FROM users INNER JOIN orders ON users.id = orders.user_id`,
		`SELECT users.*, orders.name FROM users INNER JOIN orders ON users.id = orders.user_id`,
		`SELECT COUNT(*) FROM users INNER JOIN orders ON users.id = orders.user_id`,
	}, queries)
}

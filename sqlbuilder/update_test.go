package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`UPDATE users SET active = 0`,
		Update("users").Set("active", "0").Render(),
	)

	assert.Equal(
		`UPDATE users SET active = 0, role = 'guest' WHERE id = 1`,
		Update("users").
			Set("active", "0").
			Set("role", `'guest'`).
			Where("id = 1").
			Render(),
	)

	assert.Equal(
		`UPDATE orders SET status = 'shipped' WHERE id = 123 AND status = 'pending'`,
		Update("orders").
			Set("status", `'shipped'`).
			Where("id = 123").
			Where("status = 'pending'").
			Render(),
	)

	assert.Equal(
		`UPDATE logs SET archived = 1 WHERE created_at < '2024-01-01' LIMIT 1000`,
		Update("logs").
			Set("archived", "1").
			Where("created_at < '2024-01-01'").
			Limit(1000).
			Render(),
	)
}

func TestUpdateSetMap(t *testing.T) {
	assert.Equal(t,
		`UPDATE t SET a = 'x', b = 2 WHERE id = 1 LIMIT 10`,
		Update("t").
			SetMap(map[string]interface{}{"b": 2, "a": "x"}).
			Where("id = 1").
			Limit(10).
			Render(),
	)
}

func TestUpdateReset(t *testing.T) {
	q := Update("t").Set("a", "1").Where("id = 1")
	assert.Equal(t, `UPDATE t SET a = 1 WHERE id = 1`, q.Render())

	q.Reset()
	assert.Equal(t, `UPDATE t SET b = 2`, q.Set("b", "2").Render())
}

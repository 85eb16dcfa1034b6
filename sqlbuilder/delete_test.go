package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelete(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`DELETE FROM users`,
		DeleteFrom("users").Render(),
	)

	assert.Equal(
		`DELETE FROM t WHERE id = 1`,
		DeleteFrom("t").Where("id = 1").Render(),
	)

	assert.Equal(
		`DELETE FROM logs WHERE created_at < '2024-01-01' AND level = 'debug' LIMIT 500`,
		DeleteFrom("logs").
			Where("created_at < '2024-01-01'").
			Where("level = 'debug'").
			Limit(500).
			Render(),
	)
}

func TestDeleteReset(t *testing.T) {
	q := DeleteFrom("t").Where("id = 1").Limit(1)
	assert.Equal(t, `DELETE FROM t WHERE id = 1 LIMIT 1`, q.Render())
	assert.Equal(t, `DELETE FROM t`, q.Reset().Render())
}

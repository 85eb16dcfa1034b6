package sqlgen

import (
	"github.com/sqlcraft/sqlcraft/internal/cache"
)

// Default layouts. Output is deliberately single-line with single-space
// clause joints: callers string-match generated queries, so whitespace is
// part of the contract. Identifiers and fragments are inserted verbatim,
// with no quoting.
const (
	defaultAndKeyword         = `AND`
	defaultAscKeyword         = `ASC`
	defaultAssignmentOperator = `=`
	defaultClauseGroup        = `({{.}})`
	defaultClauseOperator     = ` {{.}} `
	defaultColumnValue        = `{{.Column}} {{.Operator}} {{.Value}}`
	defaultDescKeyword        = `DESC`
	defaultIdentifierSep      = `, `
	defaultSortByColumnLayout = `{{.Column}} {{.Order}}`
	defaultTableAliasLayout   = `{{.Name}}{{if .Alias}} {{.Alias}}{{end}}`
	defaultValueQuote         = `'{{.}}'`
	defaultValueSep           = `, `

	defaultGroupByLayout = `GROUP BY {{.Columns}}`
	defaultHavingLayout  = `HAVING {{.Conds}}`
	defaultJoinLayout    = `{{.Type}} JOIN {{.Table}} ON {{.On}}`
	defaultOrderByLayout = `ORDER BY {{.SortColumns}}`
	defaultWhereLayout   = `WHERE {{.Conds}}`

	defaultSelectLayout = `SELECT ` +
		`{{if .Columns}}{{.Columns}}{{else}}*{{end}}` +
		`{{if .Table}} FROM {{.Table}}{{end}}` +
		`{{if .Joins}} {{.Joins}}{{end}}` +
		`{{if .Where}} {{.Where}}{{end}}` +
		`{{if .GroupBy}} {{.GroupBy}}{{end}}` +
		`{{if .Having}} {{.Having}}{{end}}` +
		`{{if .OrderBy}} {{.OrderBy}}{{end}}` +
		`{{if .Limit}} LIMIT {{.Limit}}{{end}}` +
		`{{if .Offset}} OFFSET {{.Offset}}{{end}}`

	defaultInsertLayout = `INSERT INTO {{.Table}}` +
		`{{if .Columns}} ({{.Columns}}){{end}}` +
		`{{if .Values}} VALUES {{.Values}}{{end}}`

	defaultUpdateLayout = `UPDATE {{.Table}} SET {{.ColumnValues}}` +
		`{{if .Where}} {{.Where}}{{end}}` +
		`{{if .Limit}} LIMIT {{.Limit}}{{end}}`

	defaultDeleteLayout = `DELETE FROM {{.Table}}` +
		`{{if .Where}} {{.Where}}{{end}}` +
		`{{if .Limit}} LIMIT {{.Limit}}{{end}}`
)

var defaultTemplate = &Template{
	AndKeyword:         defaultAndKeyword,
	AscKeyword:         defaultAscKeyword,
	AssignmentOperator: defaultAssignmentOperator,
	ClauseGroup:        defaultClauseGroup,
	ClauseOperator:     defaultClauseOperator,
	ColumnValue:        defaultColumnValue,
	DescKeyword:        defaultDescKeyword,
	DeleteLayout:       defaultDeleteLayout,
	GroupByLayout:      defaultGroupByLayout,
	HavingLayout:       defaultHavingLayout,
	IdentifierSep:      defaultIdentifierSep,
	InsertLayout:       defaultInsertLayout,
	JoinLayout:         defaultJoinLayout,
	OrderByLayout:      defaultOrderByLayout,
	SelectLayout:       defaultSelectLayout,
	SortByColumnLayout: defaultSortByColumnLayout,
	TableAliasLayout:   defaultTableAliasLayout,
	UpdateLayout:       defaultUpdateLayout,
	ValueQuote:         defaultValueQuote,
	ValueSep:           defaultValueSep,
	WhereLayout:        defaultWhereLayout,

	Cache: cache.NewCache(),
}

// DefaultTemplate returns the process-wide layout set. It is read-only after
// initialization.
func DefaultTemplate() *Template {
	return defaultTemplate
}

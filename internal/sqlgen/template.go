package sqlgen

import (
	"bytes"
	"sync"
	"text/template"

	"github.com/sqlcraft/sqlcraft/internal/cache"
)

// Type is the type of SQL statement.
type Type uint8

// Values for Type.
const (
	NoOp = Type(iota)

	Select
	Insert
	Update
	Delete

	SQL
)

type (
	// Limit represents the SQL limit in a query.
	Limit int
	// Offset represents the SQL offset in a query.
	Offset int
)

var templateCache = templateMap{M: make(map[string]*template.Template)}

// Template is the set of layouts that determine how every statement and
// fragment kind is rendered.
type Template struct {
	AndKeyword         string
	AscKeyword         string
	AssignmentOperator string
	ClauseGroup        string
	ClauseOperator     string
	ColumnValue        string
	DescKeyword        string
	DeleteLayout       string
	GroupByLayout      string
	HavingLayout       string
	IdentifierSep      string
	InsertLayout       string
	JoinLayout         string
	OrderByLayout      string
	SelectLayout       string
	SortByColumnLayout string
	TableAliasLayout   string
	UpdateLayout       string
	ValueQuote         string
	ValueSep           string
	WhereLayout        string

	*cache.Cache
}

func mustParse(text string, data interface{}) string {
	var b bytes.Buffer

	v, ok := templateCache.Get(text)
	if !ok {
		v = template.Must(template.New("").Parse(text))
		templateCache.Set(text, v)
	}

	if err := v.Execute(&b, data); err != nil {
		panic("There was an error compiling the following template:\n" + text + "\nError was: " + err.Error())
	}

	return b.String()
}

type templateMap struct {
	sync.RWMutex
	M map[string]*template.Template
}

func (m *templateMap) Get(k string) (*template.Template, bool) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.M[k]
	return v, ok
}

func (m *templateMap) Set(k string, v *template.Template) {
	m.Lock()
	defer m.Unlock()
	m.M[k] = v
}

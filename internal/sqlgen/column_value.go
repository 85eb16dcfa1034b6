package sqlgen

import (
	"strings"
)

type columnValueT struct {
	Column   string
	Operator string
	Value    string
}

// ColumnValue represents a column-operator-value relation, as in an UPDATE
// assignment.
type ColumnValue struct {
	Column   Fragment
	Operator string
	Value    Fragment
}

// Hash returns a unique identifier for the struct.
func (cv *ColumnValue) Hash() uint64 {
	return quickHash(FragmentType_ColumnValue, cv.Column, cv.Operator, cv.Value)
}

// Compile transforms the ColumnValue into an equivalent SQL representation.
func (cv *ColumnValue) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(cv); ok {
		return z
	}

	data := columnValueT{
		Column:   cv.Column.Compile(layout),
		Operator: cv.Operator,
	}
	if cv.Value != nil {
		data.Value = cv.Value.Compile(layout)
	}

	compiled = mustParse(layout.ColumnValue, data)

	layout.Write(cv, compiled)

	return
}

// ColumnValues represents an array of ColumnValue.
type ColumnValues struct {
	ColumnValues []Fragment
}

// JoinColumnValues creates and returns an array of ColumnValue.
func JoinColumnValues(values ...Fragment) *ColumnValues {
	return &ColumnValues{ColumnValues: values}
}

// Insert adds a column-value relation to the array.
func (cvs *ColumnValues) Insert(values ...Fragment) *ColumnValues {
	cvs.ColumnValues = append(cvs.ColumnValues, values...)
	return cvs
}

// Hash returns a unique identifier for the struct.
func (cvs *ColumnValues) Hash() uint64 {
	h := make([]interface{}, len(cvs.ColumnValues))
	for i := range cvs.ColumnValues {
		h[i] = cvs.ColumnValues[i]
	}
	return quickHash(FragmentType_ColumnValues, h...)
}

// Compile transforms the ColumnValues into its SQL representation.
func (cvs *ColumnValues) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(cvs); ok {
		return z
	}

	out := make([]string, len(cvs.ColumnValues))
	for i := range cvs.ColumnValues {
		out[i] = cvs.ColumnValues[i].Compile(layout)
	}
	compiled = strings.Join(out, layout.IdentifierSep)

	layout.Write(cvs, compiled)

	return
}

package sqlgen

import (
	"github.com/sqlcraft/sqlcraft/internal/cache"
)

// FragmentType is used to assign a unique hash domain to each fragment kind.
type FragmentType uint8

// Fragment types
const (
	FragmentType_None FragmentType = iota

	FragmentType_Columns
	FragmentType_ColumnValue
	FragmentType_ColumnValues
	FragmentType_GroupBy
	FragmentType_Having
	FragmentType_Join
	FragmentType_Joins
	FragmentType_Nil
	FragmentType_OrderBy
	FragmentType_Raw
	FragmentType_SortColumn
	FragmentType_SortColumns
	FragmentType_Statement
	FragmentType_Table
	FragmentType_Value
	FragmentType_ValueGroups
	FragmentType_Values
	FragmentType_Where
)

// Fragment is any interface that can be both hashed and compiled into an SQL
// representation.
type Fragment interface {
	cache.Hashable

	Compile(*Template) string
}

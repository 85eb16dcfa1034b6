package sqlgen

type tableT struct {
	Name  string
	Alias string
}

// Table represents a table reference, with an optional alias. The alias is
// rendered in "name alias" form.
type Table struct {
	Name  string
	Alias string
}

// TableWithName creates and returns a Table with the given name.
func TableWithName(name string) *Table {
	return &Table{Name: name}
}

// Hash returns a unique identifier for the struct.
func (t *Table) Hash() uint64 {
	return quickHash(FragmentType_Table, t.Name, t.Alias)
}

// Compile transforms the Table into its SQL representation.
func (t *Table) Compile(layout *Template) string {
	if t.Name == "" {
		return ""
	}
	return mustParse(layout.TableAliasLayout, tableT{Name: t.Name, Alias: t.Alias})
}

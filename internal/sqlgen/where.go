package sqlgen

import (
	"strings"
)

type conds struct {
	Conds string
}

// Where represents an SQL WHERE clause. Conditions are conjoined with AND in
// their original order.
type Where struct {
	Conditions []Fragment
}

// WhereConditions creates and returns a new Where.
func WhereConditions(conditions ...Fragment) *Where {
	return &Where{Conditions: conditions}
}

// Append adds conditions to the clause.
func (w *Where) Append(conditions ...Fragment) *Where {
	w.Conditions = append(w.Conditions, conditions...)
	return w
}

// Hash returns a unique identifier for the struct.
func (w *Where) Hash() uint64 {
	h := make([]interface{}, len(w.Conditions))
	for i := range w.Conditions {
		h[i] = w.Conditions[i]
	}
	return quickHash(FragmentType_Where, h...)
}

// Compile transforms the Where into an equivalent SQL representation.
func (w *Where) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(w); ok {
		return z
	}

	if grouped := groupCondition(layout, w.Conditions); grouped != "" {
		compiled = mustParse(layout.WhereLayout, conds{grouped})
	}

	layout.Write(w, compiled)

	return
}

// Having represents an SQL HAVING clause. It shares the Where conjunction
// semantics.
type Having Where

// HavingConditions creates and returns a new Having.
func HavingConditions(conditions ...Fragment) *Having {
	return &Having{Conditions: conditions}
}

// Hash returns a unique identifier for the struct.
func (h *Having) Hash() uint64 {
	w := Where(*h)
	return quickHash(FragmentType_Having, w.Hash())
}

// Compile transforms the Having into an equivalent SQL representation.
func (h *Having) Compile(layout *Template) (compiled string) {
	if z, ok := layout.Read(h); ok {
		return z
	}

	if grouped := groupCondition(layout, h.Conditions); grouped != "" {
		compiled = mustParse(layout.HavingLayout, conds{grouped})
	}

	layout.Write(h, compiled)

	return
}

func groupCondition(layout *Template, terms []Fragment) string {
	l := len(terms)
	if l == 0 {
		return ""
	}

	out := make([]string, 0, l)
	for i := 0; i < l; i++ {
		out = append(out, terms[i].Compile(layout))
	}

	return strings.Join(out, mustParse(layout.ClauseOperator, layout.AndKeyword))
}

package ledger

import (
	"fmt"
	"strings"
)

// EntityKind names an entity whose create payload carries mandatory fields.
type EntityKind string

const (
	EntityUser     EntityKind = "user"
	EntityGroup    EntityKind = "group"
	EntityBudget   EntityKind = "budget"
	EntityCategory EntityKind = "category"
	EntityExpense  EntityKind = "expense"
)

// mandatoryFields is the field-requirement registry: one entry per entity
// kind, checked in declaration order. The table is validated at startup so
// a malformed entry fails the process instead of silently passing requests.
var mandatoryFields = map[EntityKind][]string{
	EntityUser:     {"username", "firstName", "password", "email", "phone"},
	EntityGroup:    {"name", "members"},
	EntityBudget:   {"amount", "date"},
	EntityCategory: {"name", "categoryBudget", "color", "isDark"},
	EntityExpense:  {"categoryId", "name", "amount"},
}

func init() {
	for kind, fields := range mandatoryFields {
		if len(fields) == 0 {
			panic(fmt.Sprintf("ledger: empty mandatory field list for %q", kind))
		}
		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			if f == "" || seen[f] {
				panic(fmt.Sprintf("ledger: bad mandatory field entry %q for %q", f, kind))
			}
			seen[f] = true
		}
	}
}

// MissingFields returns the mandatory fields of kind for which present
// reports false, in registry order. Unknown kinds panic: the set of kinds is
// closed and a miss is a programming error, not user input.
func MissingFields(kind EntityKind, present func(field string) bool) []string {
	fields, ok := mandatoryFields[kind]
	if !ok {
		panic(fmt.Sprintf("ledger: unknown entity kind %q", kind))
	}
	var missing []string
	for _, f := range fields {
		if !present(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// RequireFields is MissingFields folded into a ValidationError.
func RequireFields(kind EntityKind, present func(field string) bool) error {
	missing := MissingFields(kind, present)
	if len(missing) == 0 {
		return nil
	}
	verb := " are"
	if len(missing) == 1 {
		verb = " is"
	}
	return Errf(KindValidation, "%s%s missing. Please fill all the mandatory fields", strings.Join(missing, ","), verb)
}

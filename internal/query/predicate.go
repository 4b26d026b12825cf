package query

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// validFieldName matches only alphanumeric characters and underscores.
// Column names come from code, not from clients; the check is a guard
// against a malformed name ever reaching the SQL text.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Predicate is an opaque boolean filter over entity columns. The same
// predicate value must be used for both the count and the fetch of a
// paginated query; the engine guarantees this by composing it once.
//
// A predicate compiles to a SQL fragment. Predicates over invalid column
// names compile to nothing and are silently dropped, matching the
// allow-list behavior of the sort and filter scopes this grew out of.
type Predicate interface {
	clause() (string, []any)
}

type equalsPredicate struct {
	field string
	value any
}

func (p equalsPredicate) clause() (string, []any) {
	if !validFieldName.MatchString(p.field) {
		return "", nil
	}
	return p.field + " = ?", []any{p.value}
}

type regexPredicate struct {
	field string
	term  string
}

func (p regexPredicate) clause() (string, []any) {
	if !validFieldName.MatchString(p.field) || p.term == "" {
		return "", nil
	}
	return "LOWER(" + p.field + ") LIKE ?", []any{"%" + strings.ToLower(p.term) + "%"}
}

type groupPredicate struct {
	op    string
	preds []Predicate
}

func (p groupPredicate) clause() (string, []any) {
	parts := make([]string, 0, len(p.preds))
	var args []any
	for _, sub := range p.preds {
		if sub == nil {
			continue
		}
		c, a := sub.clause()
		if c == "" {
			continue
		}
		parts = append(parts, "("+c+")")
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, " "+p.op+" "), args
}

// Equals matches rows whose column equals the given value.
func Equals(field string, value any) Predicate {
	return equalsPredicate{field: field, value: value}
}

// Regex matches rows whose column contains the term, case-insensitively.
// An empty term matches nothing and compiles to a no-op.
func Regex(field, term string) Predicate {
	return regexPredicate{field: field, term: term}
}

// And combines predicates so that all must hold. Nil and empty
// sub-predicates are skipped.
func And(preds ...Predicate) Predicate {
	return groupPredicate{op: "AND", preds: preds}
}

// Or combines predicates so that at least one must hold. Each branch is
// parenthesized, so an Or used inside an And stays a pure OR-group.
func Or(preds ...Predicate) Predicate {
	return groupPredicate{op: "OR", preds: preds}
}

// Apply adds the predicate to a GORM query. A nil or empty predicate
// leaves the query unchanged.
func Apply(db *gorm.DB, p Predicate) *gorm.DB {
	if p == nil {
		return db
	}
	c, args := p.clause()
	if c == "" {
		return db
	}
	return db.Where(c, args...)
}

// Clause exposes the compiled SQL fragment of a predicate, mainly for
// inspection in tests.
func Clause(p Predicate) (string, []any) {
	if p == nil {
		return "", nil
	}
	return p.clause()
}

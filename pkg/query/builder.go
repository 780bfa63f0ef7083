// Package query builds parameterized PostgreSQL SELECT statements over a ProjectionMap.
package query

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
// Sort fields that are not part of the projection are dropped, so request input can be
// passed straight to OrderBy.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	sort        []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder for projection. defaultSort uses the ParseSortFields syntax.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: ParseSortFields(defaultSort),
	}
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where), args
}

// BuildList returns an ordered SELECT of every matching row.
func (b *Builder) BuildList() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildPage returns a paginated SELECT query with ordering, limit, and offset.
// Negative values are clamped to zero.
func (b *Builder) BuildPage(limit, offset int) (string, []any) {
	list, args := b.BuildList()
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", list, max(limit, 0), max(offset, 0)), args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(idField),
	)
	return sql, []any{id}
}

// OrderBy replaces the sort. An empty or fully unknown list falls back to the default sort.
func (b *Builder) OrderBy(fields ...SortField) *Builder {
	b.sort = b.sort[:0]
	for _, f := range fields {
		if b.projection.Has(f.Field) {
			b.sort = append(b.sort, f)
		}
	}
	return b
}

// WhereEqualsFold adds a case-insensitive equality condition. Empty values are ignored.
func (b *Builder) WhereEqualsFold(field, value string) *Builder {
	if value == "" {
		return b
	}
	return b.where(fmt.Sprintf("LOWER(%s) = LOWER($%%d)", b.projection.Column(field)), value)
}

// WhereGreater adds a strict greater-than condition.
func (b *Builder) WhereGreater(field string, value any) *Builder {
	return b.where(fmt.Sprintf("%s > $%%d", b.projection.Column(field)), value)
}

// WhereAtLeast adds an inclusive greater-than-or-equal condition.
func (b *Builder) WhereAtLeast(field string, value any) *Builder {
	return b.where(fmt.Sprintf("%s >= $%%d", b.projection.Column(field)), value)
}

// WhereSearch adds an OR condition across fields with ILIKE. Nil or empty search is ignored.
// The term matches literally: LIKE wildcards in it are escaped.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	pattern := "%" + likeEscaper.Replace(*search) + "%"

	for i, field := range fields {
		clauses[i] = fmt.Sprintf(`%s ILIKE $%%d ESCAPE '\'`, b.projection.Column(field))
		args[i] = pattern
	}

	return b.where("("+strings.Join(clauses, " OR ")+")", args...)
}

func (b *Builder) where(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.sort
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	terms := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		terms[i] = fmt.Sprintf("%s %s", b.projection.Column(f.Field), dir)
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			args = append(args, arg)
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", len(args)), 1)
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

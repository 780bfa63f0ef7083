package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps public field names onto the qualified columns of one table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates an empty projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project adds column to the projection and exposes it under field.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.fields[strings.ToLower(field)] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference used in FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the projected columns joined for a SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns a copy of the projected columns in declaration order.
func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}

// Has reports whether field is part of the projection. Lookups ignore case.
func (p *ProjectionMap) Has(field string) bool {
	_, ok := p.fields[strings.ToLower(field)]
	return ok
}

// Column returns the qualified column for field, or field itself when it is not projected.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[strings.ToLower(field)]; ok {
		return col
	}
	return field
}

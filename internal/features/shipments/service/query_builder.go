package service

import (
	"fmt"
	"sort"
	"strings"

	"shipment-risk-assistant/internal/features/shipments/domain"
)

// baseQuery is the select-all clause every generated query starts from.
const baseQuery = "SELECT * FROM c"

// Query is a parameterized query: the text references named placeholders and
// Params carries the value bound to each. The executor must bind every
// placeholder exactly once.
type Query struct {
	Text   string
	Params map[string]string
}

// Filters re-derives the filter set from the query bindings.
func (q Query) Filters() domain.FilterSet {
	filters := make(domain.FilterSet, len(q.Params))
	for name, value := range q.Params {
		filters[strings.TrimPrefix(name, "@")] = value
	}
	return filters
}

// BuildQuery builds a parameterized query from the filter set. Conditions are
// joined with AND when useAnd is set, OR otherwise; an empty filter set yields
// the bare select-all with no WHERE clause.
func BuildQuery(filters domain.FilterSet, useAnd bool) Query {
	query := Query{Text: baseQuery, Params: make(map[string]string, len(filters))}
	if len(filters) == 0 {
		return query
	}

	conditions := make([]string, 0, len(filters))
	for _, field := range sortedFields(filters) {
		param := "@" + field
		conditions = append(conditions, fmt.Sprintf("c.%s = %s", field, param))
		query.Params[param] = filters[field]
	}

	query.Text += " WHERE " + strings.Join(conditions, joiner(useAnd))
	return query
}

// BuildRawQuery builds a query string with filter values inlined. Every quote
// character in a value is doubled before interpolation. The result is plain
// text substitution for APIs that accept SQL-like filter text; it must never
// be handed to a real SQL engine.
func BuildRawQuery(filters domain.FilterSet, useAnd bool) string {
	if len(filters) == 0 {
		return baseQuery
	}

	conditions := make([]string, 0, len(filters))
	for _, field := range sortedFields(filters) {
		safe := strings.ReplaceAll(filters[field], "'", "''")
		conditions = append(conditions, fmt.Sprintf("c.%s = '%s'", field, safe))
	}

	return baseQuery + " WHERE " + strings.Join(conditions, joiner(useAnd))
}

func joiner(useAnd bool) string {
	if useAnd {
		return " AND "
	}
	return " OR "
}

// sortedFields gives clause ordering a stable form; the order itself carries
// no meaning.
func sortedFields(filters domain.FilterSet) []string {
	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

package postgrest

import (
	"fmt"
	"net/url"
)

// Query builds the filter portion of a PostgREST request URL. Every value
// goes through url.Values so reserved characters in user-supplied strings
// (position names, credentials) are always percent-encoded; adapters must
// never interpolate filter values by hand.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Select sets the column projection, e.g. Select("*").
func (q *Query) Select(columns string) *Query {
	q.values.Set("select", columns)
	return q
}

// Eq adds an equality filter: column=eq.value.
func (q *Query) Eq(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Gte adds a greater-than-or-equal filter: column=gte.value.
func (q *Query) Gte(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("gte.%v", value))
	return q
}

// Lte adds a less-than-or-equal filter: column=lte.value.
func (q *Query) Lte(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("lte.%v", value))
	return q
}

// OrderAsc orders results by column ascending.
func (q *Query) OrderAsc(column string) *Query {
	q.values.Set("order", column+".asc")
	return q
}

// OnConflict declares the uniqueness constraint columns an upsert merges on.
func (q *Query) OnConflict(columns string) *Query {
	q.values.Set("on_conflict", columns)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.values.Set("limit", fmt.Sprintf("%d", n))
	return q
}

// Encode renders the query string without the leading "?".
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}

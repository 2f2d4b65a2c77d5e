package db

import (
	"fmt"
	"strings"
)

// Dialect captures the placeholder syntax that differs between the
// supported SQL databases. Queries are written with "?" and rebound.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Bind rewrites "?" placeholders into the dialect's form.
func (d Dialect) Bind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package database

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Identifiers are declared in code only. Anything outside this shape is a
// programming error and panics at package initialization.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Statement is an immutable (query text, positional parameters) pair.
type Statement struct {
	Query  string
	Params []any
}

// Batch is an ordered list of statements executed in one transaction.
type Batch []Statement

// Append adds the given statements in order, skipping nil ones. Bulk
// insertions of empty collections come back nil and must never be executed.
func (b Batch) Append(stmts ...*Statement) Batch {
	for _, s := range stmts {
		if s != nil {
			b = append(b, *s)
		}
	}
	return b
}

// IDGenerator mints globally unique row ids. No ordering is implied.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

func mustIdentifier(kind, name string) string {
	if !identifierPattern.MatchString(name) {
		panic(fmt.Sprintf("database: invalid %s identifier %q", kind, name))
	}
	return name
}

func quote(name string) string {
	return pq.QuoteIdentifier(name)
}

// Table is a child collection table: every row carries a generated id, the
// data columns, and a reference to its owning entity, in that order.
type Table struct {
	name      string
	refColumn string
	columns   []string
}

// MustTable declares a child collection table.
func MustTable(name, refColumn string, columns ...string) Table {
	t := Table{
		name:      mustIdentifier("table", name),
		refColumn: mustIdentifier("column", refColumn),
		columns:   make([]string, len(columns)),
	}
	for i, c := range columns {
		t.columns[i] = mustIdentifier("column", c)
	}
	return t
}

func (t Table) Name() string { return t.name }

func (t Table) ReferenceColumn() string { return t.refColumn }

// Columns returns the data columns, excluding id and the reference column.
func (t Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// BuildDeletion deletes every row of t that references referenceValue.
func BuildDeletion(t Table, referenceValue any) Statement {
	return Statement{
		Query:  fmt.Sprintf("DELETE FROM %s WHERE %s = $1", quote(t.name), quote(t.refColumn)),
		Params: []any{referenceValue},
	}
}

// BuildBulkInsertion inserts all records into t as a single multi-row
// statement. Each row gets a fresh id from newID (uuid when nil), followed by
// extract(record) and referenceValue. It returns nil for an empty input.
//
// extract must return exactly len(t.Columns()) values; anything else panics.
func BuildBulkInsertion[R any](t Table, referenceValue any, records []R, extract func(R) []any, newID IDGenerator) *Statement {
	if len(records) == 0 {
		return nil
	}
	if newID == nil {
		newID = NewUUID
	}

	width := len(t.columns) + 2
	params := make([]any, 0, len(records)*width)

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quote(t.name))
	b.WriteString(" (")
	b.WriteString(quote("id"))
	for _, c := range t.columns {
		b.WriteString(", ")
		b.WriteString(quote(c))
	}
	b.WriteString(", ")
	b.WriteString(quote(t.refColumn))
	b.WriteString(") VALUES ")

	for i, r := range records {
		values := extract(r)
		if len(values) != len(t.columns) {
			panic(fmt.Sprintf("database: %s expects %d values per record, got %d", t.name, len(t.columns), len(values)))
		}
		if i > 0 {
			b.WriteString(", ")
		}
		writePlaceholders(&b, len(params)+1, width)

		params = append(params, newID())
		params = append(params, values...)
		params = append(params, referenceValue)
	}

	return &Statement{Query: b.String(), Params: params}
}

func writePlaceholders(b *strings.Builder, first, n int) {
	b.WriteByte('(')
	for j := 0; j < n; j++ {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "$%d", first+j)
	}
	b.WriteByte(')')
}

// Entity is a primary table keyed by an opaque id column.
type Entity struct {
	name      string
	keyColumn string
}

// MustEntity declares a primary table.
func MustEntity(name, keyColumn string) Entity {
	return Entity{
		name:      mustIdentifier("table", name),
		keyColumn: mustIdentifier("column", keyColumn),
	}
}

func (e Entity) Name() string { return e.name }

func (e Entity) KeyColumn() string { return e.keyColumn }

// Columns declares an ordered column set of e for updates and inserts.
func (e Entity) Columns(columns ...string) ColumnSet {
	set := ColumnSet{entity: e, columns: make([]string, len(columns))}
	for i, c := range columns {
		set.columns[i] = mustIdentifier("column", c)
	}
	return set
}

// ColumnSet is an ordered subset of an entity's columns.
type ColumnSet struct {
	entity  Entity
	columns []string
}

func (s ColumnSet) Entity() Entity { return s.entity }

func (s ColumnSet) checkArity(values []any) {
	if len(values) != len(s.columns) {
		panic(fmt.Sprintf("database: %s column set expects %d values, got %d", s.entity.name, len(s.columns), len(values)))
	}
}

// BuildUpdate sets the columns of s to values on the row keyed by key.
func BuildUpdate(s ColumnSet, key any, values ...any) Statement {
	s.checkArity(values)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(quote(s.entity.name))
	b.WriteString(" SET ")
	for i, c := range s.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", quote(c), i+1)
	}
	fmt.Fprintf(&b, " WHERE %s = $%d", quote(s.entity.keyColumn), len(s.columns)+1)

	params := make([]any, 0, len(values)+1)
	params = append(params, values...)
	params = append(params, key)
	return Statement{Query: b.String(), Params: params}
}

// BuildInsert inserts one row keyed by key with the columns of s.
func BuildInsert(s ColumnSet, key any, values ...any) Statement {
	s.checkArity(values)

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quote(s.entity.name))
	b.WriteString(" (")
	b.WriteString(quote(s.entity.keyColumn))
	for _, c := range s.columns {
		b.WriteString(", ")
		b.WriteString(quote(c))
	}
	b.WriteString(") VALUES ")
	writePlaceholders(&b, 1, len(s.columns)+1)

	params := make([]any, 0, len(values)+1)
	params = append(params, key)
	params = append(params, values...)
	return Statement{Query: b.String(), Params: params}
}

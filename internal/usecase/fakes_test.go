package usecase_test

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
)

type row map[string]any

// memDB is an in-memory stand-in for PostgreSQL that understands the
// statements produced by the database package. Transactions work on a copy
// of the tables that replaces the committed state on commit.
type memDB struct {
	mu     sync.Mutex
	tables map[string][]row

	// failWhen, when set, is consulted before every statement.
	failWhen   func(query string) error
	failCommit error
	executed   []string
}

func newMemDB() *memDB {
	return &memDB{tables: map[string][]row{}}
}

func (db *memDB) seed(table string, rows ...row) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.tables[table] = append(db.tables[table], rows...)
}

func (db *memDB) snapshot() map[string][]row {
	db.mu.Lock()
	defer db.mu.Unlock()
	return cloneTables(db.tables)
}

// rowsOf returns the committed rows of table whose column equals value.
func (db *memDB) rowsOf(table, column string, value any) []row {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []row
	for _, r := range db.tables[table] {
		if r[column] == value {
			out = append(out, r)
		}
	}
	return out
}

func cloneTables(tables map[string][]row) map[string][]row {
	out := make(map[string][]row, len(tables))
	for name, rows := range tables {
		copied := make([]row, len(rows))
		for i, r := range rows {
			copied[i] = make(row, len(r))
			for k, v := range r {
				copied[i][k] = v
			}
		}
		out[name] = copied
	}
	return out
}

var assetTables = map[domain.EntityKind]struct{ table, column string }{
	domain.EntityUser:    {"users", "profile_picture"},
	domain.EntityCompany: {"companies", "profile_picture"},
	domain.EntityVacancy: {"vacancies", ""},
}

func (db *memDB) CurrentAsset(_ context.Context, kind domain.EntityKind, id string) (string, error) {
	a, ok := assetTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
	rows := db.rowsOf(a.table, "id", id)
	if len(rows) == 0 {
		return "", domain.ErrNotFound
	}
	ref, _ := rows[0][a.column].(string)
	return ref, nil
}

func (db *memDB) Acquire(context.Context) (database.Conn, error) {
	return memConn{db: db}, nil
}

type memConn struct {
	db *memDB
}

func (c memConn) Begin(context.Context) (database.Tx, error) {
	return &memTx{db: c.db, tables: c.db.snapshot()}, nil
}

func (c memConn) Release() {}

type memTx struct {
	db     *memDB
	tables map[string][]row
	done   bool
}

var (
	insertPattern = regexp.MustCompile(`^INSERT INTO "(\w+)" \(([^)]*)\) VALUES `)
	updatePattern = regexp.MustCompile(`^UPDATE "(\w+)" SET (.+) WHERE "(\w+)" = \$(\d+)$`)
	deletePattern = regexp.MustCompile(`^DELETE FROM "(\w+)" WHERE "(\w+)" = \$1$`)
	assignPattern = regexp.MustCompile(`"(\w+)" = \$(\d+)`)
)

func (tx *memTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.db.mu.Lock()
	tx.db.executed = append(tx.db.executed, sql)
	failWhen := tx.db.failWhen
	tx.db.mu.Unlock()

	if failWhen != nil {
		if err := failWhen(sql); err != nil {
			return pgconn.CommandTag{}, err
		}
	}

	switch {
	case insertPattern.MatchString(sql):
		m := insertPattern.FindStringSubmatch(sql)
		columns := strings.Split(strings.ReplaceAll(m[2], `"`, ""), ", ")
		if len(args)%len(columns) != 0 {
			return pgconn.CommandTag{}, fmt.Errorf("%d params for %d columns", len(args), len(columns))
		}
		for i := 0; i < len(args); i += len(columns) {
			r := make(row, len(columns))
			for j, c := range columns {
				r[c] = args[i+j]
			}
			tx.tables[m[1]] = append(tx.tables[m[1]], r)
		}
		return pgconn.NewCommandTag("INSERT 0 " + strconv.Itoa(len(args)/len(columns))), nil

	case updatePattern.MatchString(sql):
		m := updatePattern.FindStringSubmatch(sql)
		keyPos, _ := strconv.Atoi(m[4])
		key := args[keyPos-1]
		n := 0
		for _, r := range tx.tables[m[1]] {
			if r[m[3]] != key {
				continue
			}
			for _, a := range assignPattern.FindAllStringSubmatch(m[2], -1) {
				pos, _ := strconv.Atoi(a[2])
				r[a[1]] = args[pos-1]
			}
			n++
		}
		return pgconn.NewCommandTag("UPDATE " + strconv.Itoa(n)), nil

	case deletePattern.MatchString(sql):
		m := deletePattern.FindStringSubmatch(sql)
		kept := tx.tables[m[1]][:0:0]
		for _, r := range tx.tables[m[1]] {
			if r[m[2]] != args[0] {
				kept = append(kept, r)
			}
		}
		n := len(tx.tables[m[1]]) - len(kept)
		tx.tables[m[1]] = kept
		return pgconn.NewCommandTag("DELETE " + strconv.Itoa(n)), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unsupported statement: %s", sql)
}

func (tx *memTx) Commit(context.Context) error {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	if tx.done {
		return fmt.Errorf("tx closed")
	}
	tx.done = true
	if tx.db.failCommit != nil {
		return tx.db.failCommit
	}
	tx.db.tables = tx.tables
	return nil
}

func (tx *memTx) Rollback(context.Context) error {
	tx.done = true
	return nil
}

package a

import (
	"context"
	"database/sql"
	"fmt"
)

const selectOne = "SELECT 1"

func queries(ctx context.Context, db *sql.DB, table string) {
	db.Exec("DELETE FROM guestbook WHERE id = ?", 1)
	db.QueryContext(ctx, "SELECT id FROM guestbook LIMIT ?", 50)
	db.QueryRow(selectOne)

	db.Exec(fmt.Sprintf("DELETE FROM %s", table)) // want "SQL text passed to Exec is not a constant, use placeholders"

	q := "SELECT * FROM " + table
	db.QueryRowContext(ctx, q) // want "SQL text passed to QueryRowContext is not a constant, use placeholders"
}

type fake struct{}

func (fake) Exec(query string) {}

func notSQL(f fake, s string) {
	f.Exec(s)
}

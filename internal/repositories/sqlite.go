package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Totarae/Guestbook/internal/database"
	"github.com/Totarae/Guestbook/internal/model"
)

const (
	sqliteSelectLatest = `SELECT id, name, message, website, created_at
                          FROM guestbook
                          ORDER BY created_at DESC
                          LIMIT ?`
	sqliteSelectPage = `SELECT id, name, message, website, created_at
                        FROM guestbook
                        ORDER BY created_at DESC
                        LIMIT ? OFFSET ?`
	sqliteCount  = `SELECT COUNT(*) FROM guestbook`
	sqliteInsert = `INSERT INTO guestbook (name, message, website, created_at) VALUES (?, ?, ?, ?)`
	sqliteUpdate = `UPDATE guestbook
                    SET name = ?, message = ?, website = ?, created_at = COALESCE(?, created_at)
                    WHERE id = ?`
	sqliteDelete = `DELETE FROM guestbook WHERE id = ?`
)

// SQLiteRepository реализует GuestbookRepository для SQLite/libsql.
type SQLiteRepository struct {
	DB *database.SQLiteDB
}

// NewSQLiteRepository создаёт новый экземпляр SQLiteRepository.
func NewSQLiteRepository(db *database.SQLiteDB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) ListLatest(ctx context.Context, limit int) ([]model.Entry, error) {
	rows, err := r.DB.Conn.QueryContext(ctx, sqliteSelectLatest, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return collectSQLEntries(rows)
}

func (r *SQLiteRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Entry, error) {
	rows, err := r.DB.Conn.QueryContext(ctx, sqliteSelectPage, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries page: %w", err)
	}
	return collectSQLEntries(rows)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.Conn.QueryRowContext(ctx, sqliteCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, entry model.NewEntry) (int64, error) {
	res, err := r.DB.Conn.ExecContext(ctx, sqliteInsert, entry.Name, entry.Message, entry.Website, entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("database insert error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, upd model.EntryUpdate) error {
	_, err := r.DB.Conn.ExecContext(ctx, sqliteUpdate, upd.Name, upd.Message, upd.Website, upd.CreatedAt, upd.ID)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.Conn.ExecContext(ctx, sqliteDelete, id); err != nil {
		return fmt.Errorf("database delete error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}

func collectSQLEntries(rows *sql.Rows) ([]model.Entry, error) {
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var (
			e       model.Entry
			created any
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Message, &e.Website, &created); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.CreatedAt = createdAtString(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return entries, nil
}

// createdAtString приводит created_at к строке. Для колонок DATETIME драйвер
// отдаёт time.Time, который форматируется так же, как в PostgreSQL.
func createdAtString(v any) string {
	switch t := v.(type) {
	case time.Time:
		return FormatTime(t)
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Totarae/Guestbook/internal/database"
	"github.com/Totarae/Guestbook/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	pgSelectLatest = `SELECT id, name, message, website, created_at
                      FROM guestbook
                      ORDER BY created_at DESC
                      LIMIT $1`
	pgSelectPage = `SELECT id, name, message, website, created_at
                    FROM guestbook
                    ORDER BY created_at DESC
                    LIMIT $1 OFFSET $2`
	pgCount  = `SELECT COUNT(*) FROM guestbook`
	pgInsert = `INSERT INTO guestbook (name, message, website, created_at)
                VALUES ($1, $2, $3, $4::timestamptz)
                RETURNING id`
	pgUpdate = `UPDATE guestbook
                SET name = $1, message = $2, website = $3,
                    created_at = COALESCE($4::timestamptz, created_at)
                WHERE id = $5`
	pgDelete = `DELETE FROM guestbook WHERE id = $1`
)

// PostgresRepository реализует GuestbookRepository поверх pgxpool.
type PostgresRepository struct {
	DB *database.DB
}

// NewPostgresRepository создаёт новый экземпляр PostgresRepository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ListLatest возвращает не более limit последних записей.
func (r *PostgresRepository) ListLatest(ctx context.Context, limit int) ([]model.Entry, error) {
	rows, err := r.DB.Pool.Query(ctx, pgSelectLatest, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return collectPgEntries(rows)
}

// ListPage возвращает страницу записей.
func (r *PostgresRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Entry, error) {
	rows, err := r.DB.Pool.Query(ctx, pgSelectPage, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries page: %w", err)
	}
	return collectPgEntries(rows)
}

// Count количество записей
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.Pool.QueryRow(ctx, pgCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// Create вставляет запись и возвращает её id.
func (r *PostgresRepository) Create(ctx context.Context, entry model.NewEntry) (int64, error) {
	var id int64
	err := r.DB.Pool.QueryRow(ctx, pgInsert, entry.Name, entry.Message, entry.Website, entry.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("database insert error: %w", err)
	}
	return id, nil
}

// Update перезаписывает поля записи. Отсутствующий id не считается ошибкой.
func (r *PostgresRepository) Update(ctx context.Context, upd model.EntryUpdate) error {
	_, err := r.DB.Pool.Exec(ctx, pgUpdate, upd.Name, upd.Message, upd.Website, upd.CreatedAt, upd.ID)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	return nil
}

// Delete удаляет запись по id. Отсутствующий id не считается ошибкой.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.Pool.Exec(ctx, pgDelete, id); err != nil {
		return fmt.Errorf("database delete error: %w", err)
	}
	return nil
}

// Ping проверяет доступность базы данных.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}

func collectPgEntries(rows pgx.Rows) ([]model.Entry, error) {
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var (
			e       model.Entry
			created time.Time
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Message, &e.Website, &created); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.CreatedAt = FormatTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return entries, nil
}

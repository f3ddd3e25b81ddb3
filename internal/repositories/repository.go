package repositories

import (
	"context"
	"time"

	"github.com/Totarae/Guestbook/internal/model"
)

// TimeLayout формат created_at: ISO-8601 в UTC с миллисекундами.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// GuestbookRepository определяет операции над таблицей guestbook.
type GuestbookRepository interface {
	ListLatest(ctx context.Context, limit int) ([]model.Entry, error)
	ListPage(ctx context.Context, limit, offset int) ([]model.Entry, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, entry model.NewEntry) (int64, error)
	Update(ctx context.Context, upd model.EntryUpdate) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// FormatTime приводит время к формату хранения created_at.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

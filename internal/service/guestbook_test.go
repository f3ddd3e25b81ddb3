package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Totarae/Guestbook/internal/auth"
	"github.com/Totarae/Guestbook/internal/mocks"
	"github.com/Totarae/Guestbook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

func newService(t *testing.T) (*GuestbookService, *mocks.MockGuestbookRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGuestbookRepository(ctrl)
	svc := NewGuestbookService(repo, auth.New("s3cret"), zap.NewNop(), WithClock(func() time.Time { return fixedNow }))
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestPublicList(t *testing.T) {
	svc, repo := newService(t)
	want := []model.Entry{{ID: 1, Name: "a", Message: "b"}}
	repo.EXPECT().ListLatest(gomock.Any(), PublicListLimit).Return(want, nil)

	got, err := svc.PublicList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPublicList_BackendError(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().ListLatest(gomock.Any(), PublicListLimit).Return(nil, errors.New("connection refused"))

	_, err := svc.PublicList(context.Background())
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.EqualError(t, err, "connection refused")
}

func TestPublicCreate_Inserts(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), model.NewEntry{
		Name:      "alice",
		Message:   "hello",
		Website:   strPtr("https://alice.dev"),
		CreatedAt: "2025-03-14T15:09:26.535Z",
	}).Return(int64(1), nil)

	err := svc.PublicCreate(context.Background(), model.PublicCreateRequest{
		Name: "alice", Message: "hello", Website: strPtr("https://alice.dev"),
	})
	assert.NoError(t, err)
}

func TestPublicCreate_EmptyWebsiteStoredAsNull(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.NewEntry) (int64, error) {
			assert.Nil(t, e.Website)
			return 1, nil
		})

	err := svc.PublicCreate(context.Background(), model.PublicCreateRequest{
		Name: "bob", Message: "hi", Website: strPtr(""),
	})
	assert.NoError(t, err)
}

func TestPublicCreate_Honeypot(t *testing.T) {
	tests := []struct {
		name  string
		honey string
		saved bool
	}{
		{"absent", ``, true},
		{"null", `null`, true},
		{"empty string", `""`, true},
		{"false", `false`, true},
		{"zero", `0`, true},
		{"filled string", `"http://spam"`, false},
		{"true", `true`, false},
		{"number", `1`, false},
		{"object", `{}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.saved {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			}

			req := model.PublicCreateRequest{Name: "n", Message: "m"}
			if tt.honey != "" {
				req.Honey = json.RawMessage(tt.honey)
			}
			assert.NoError(t, svc.PublicCreate(context.Background(), req))
		})
	}
}

func TestPublicCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.PublicCreateRequest
		wantMsg string
	}{
		{"empty name", model.PublicCreateRequest{Message: "m"}, "Name and message are required"},
		{"empty message", model.PublicCreateRequest{Name: "n"}, "Name and message are required"},
		{"name 51 chars", model.PublicCreateRequest{Name: strings.Repeat("a", 51), Message: "m"}, "Name too long"},
		{"name 51 runes", model.PublicCreateRequest{Name: strings.Repeat("я", 51), Message: "m"}, "Name too long"},
		{"website 201 chars", model.PublicCreateRequest{Name: "n", Message: "m", Website: strPtr(strings.Repeat("w", 201))}, "URL too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			err := svc.PublicCreate(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestPublicCreate_BoundaryLengths(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := svc.PublicCreate(context.Background(), model.PublicCreateRequest{
		Name:    strings.Repeat("я", 50),
		Message: strings.Repeat("long ", 1000),
		Website: strPtr(strings.Repeat("w", 200)),
	})
	assert.NoError(t, err)
}

func TestAuthorize(t *testing.T) {
	svc, _ := newService(t)

	assert.NoError(t, svc.Authorize("s3cret"))
	err := svc.Authorize("wrong")
	assert.True(t, IsAuth(err))
	assert.EqualError(t, err, "Invalid Secret")
}

func TestAdminList(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantPage   int
		wantOffset int
		emptyPage  bool
	}{
		{"default", 0, 1, 0, false},
		{"first", 1, 1, 0, false},
		{"second", 2, 2, 20, false},
		{"negative", -3, 1, 0, false},
		{"last addressable", maxAdminPage, maxAdminPage, (maxAdminPage - 1) * AdminPageSize, false},
		{"offset overflow", maxAdminPage + 1, maxAdminPage + 1, 0, true},
		{"max int", math.MaxInt, math.MaxInt, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			rows := []model.Entry{{ID: 5}}
			if tt.emptyPage {
				rows = []model.Entry{}
			} else {
				repo.EXPECT().ListPage(gomock.Any(), AdminPageSize, tt.wantOffset).Return(rows, nil)
			}
			repo.EXPECT().Count(gomock.Any()).Return(25, nil)

			resp, err := svc.AdminList(context.Background(), tt.page)
			require.NoError(t, err)
			assert.Equal(t, model.AdminListResponse{Rows: rows, Total: 25, Page: tt.wantPage}, resp)
		})
	}
}

func TestAdminList_CountError(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().ListPage(gomock.Any(), AdminPageSize, 0).Return([]model.Entry{}, nil)
	repo.EXPECT().Count(gomock.Any()).Return(0, errors.New("count failed"))

	_, err := svc.AdminList(context.Background(), 1)
	assert.EqualError(t, err, "count failed")
}

func TestAdminList_OverflowPageCountError(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Count(gomock.Any()).Return(0, errors.New("count failed"))

	_, err := svc.AdminList(context.Background(), math.MaxInt)
	assert.EqualError(t, err, "count failed")
}

func TestAdminCreate(t *testing.T) {
	t.Run("verbatim created_at, no validation", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Create(gomock.Any(), model.NewEntry{
			Name:      "",
			Message:   strings.Repeat("x", 10),
			Website:   nil,
			CreatedAt: "2009-05-01T10:00:00Z",
		}).Return(int64(7), nil)

		err := svc.AdminCreate(context.Background(), model.AdminCreateRequest{
			Message: strings.Repeat("x", 10), CreatedAt: strPtr("2009-05-01T10:00:00Z"),
		})
		assert.NoError(t, err)
	})

	t.Run("defaults created_at to now", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e model.NewEntry) (int64, error) {
				assert.Equal(t, "2025-03-14T15:09:26.535Z", e.CreatedAt)
				return 8, nil
			})

		assert.NoError(t, svc.AdminCreate(context.Background(), model.AdminCreateRequest{Name: strings.Repeat("n", 80)}))
	})
}

func TestAdminUpdate(t *testing.T) {
	svc, repo := newService(t)
	gomock.InOrder(
		repo.EXPECT().Update(gomock.Any(), model.EntryUpdate{ID: 3, Name: "n", Message: "m"}).Return(nil),
		repo.EXPECT().Update(gomock.Any(), model.EntryUpdate{ID: 3, Name: "n", Message: "m", CreatedAt: strPtr("2020-01-01T00:00:00Z")}).Return(nil),
		repo.EXPECT().Update(gomock.Any(), model.EntryUpdate{ID: 3, Name: "n", Message: "m"}).Return(nil),
	)

	ctx := context.Background()
	assert.NoError(t, svc.AdminUpdate(ctx, model.AdminUpdateRequest{ID: 3, Name: "n", Message: "m"}))
	assert.NoError(t, svc.AdminUpdate(ctx, model.AdminUpdateRequest{ID: 3, Name: "n", Message: "m", CreatedAt: strPtr("2020-01-01T00:00:00Z")}))
	assert.NoError(t, svc.AdminUpdate(ctx, model.AdminUpdateRequest{ID: 3, Name: "n", Message: "m", CreatedAt: strPtr("")}))
}

func TestAdminDelete(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(errors.New("database is locked"))

	assert.NoError(t, svc.AdminDelete(context.Background(), model.AdminDeleteRequest{ID: 9}))
	assert.EqualError(t, svc.AdminDelete(context.Background(), model.AdminDeleteRequest{ID: 10}), "database is locked")
}

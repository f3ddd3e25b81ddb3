package service

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"github.com/Totarae/Guestbook/internal/auth"
	"github.com/Totarae/Guestbook/internal/model"
	"github.com/Totarae/Guestbook/internal/repositories"
	"go.uber.org/zap"
)

const (
	PublicListLimit  = 50
	AdminPageSize    = 20
	MaxNameLength    = 50
	MaxWebsiteLength = 200
)

// maxAdminPage последняя страница, смещение которой не переполняет int.
const maxAdminPage = math.MaxInt / AdminPageSize

// GuestbookService бизнес-логика публичной и административной части гостевой книги.
type GuestbookService struct {
	Repo   repositories.GuestbookRepository
	Auth   *auth.Auth
	Logger *zap.Logger
	now    func() time.Time
}

// Option настраивает GuestbookService.
type Option func(*GuestbookService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *GuestbookService) {
		s.now = now
	}
}

func NewGuestbookService(repo repositories.GuestbookRepository, authService *auth.Auth, logger *zap.Logger, opts ...Option) *GuestbookService {
	s := &GuestbookService{
		Repo:   repo,
		Auth:   authService,
		Logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PublicList последние записи для публичной страницы.
func (s *GuestbookService) PublicList(ctx context.Context) ([]model.Entry, error) {
	entries, err := s.Repo.ListLatest(ctx, PublicListLimit)
	if err != nil {
		s.Logger.Error("failed to list entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// PublicCreate добавляет запись от посетителя.
// Запросы с заполненной ловушкой подтверждаются, но не сохраняются.
func (s *GuestbookService) PublicCreate(ctx context.Context, req model.PublicCreateRequest) error {
	if req.HoneyFilled() {
		s.Logger.Info("honeypot triggered, entry discarded", zap.String("name", req.Name))
		return nil
	}

	if req.Name == "" || req.Message == "" {
		return validation("Name and message are required")
	}
	if utf8.RuneCountInString(req.Name) > MaxNameLength {
		return validation("Name too long")
	}
	website := model.NormalizeWebsite(req.Website)
	if website != nil && utf8.RuneCountInString(*website) > MaxWebsiteLength {
		return validation("URL too long")
	}

	_, err := s.Repo.Create(ctx, model.NewEntry{
		Name:      req.Name,
		Message:   req.Message,
		Website:   website,
		CreatedAt: repositories.FormatTime(s.now()),
	})
	if err != nil {
		s.Logger.Error("failed to create entry", zap.Error(err))
		return err
	}
	return nil
}

// Authorize проверяет общий секрет администратора.
func (s *GuestbookService) Authorize(secret string) error {
	if !s.Auth.Valid(secret) {
		return &AuthError{}
	}
	return nil
}

// AdminList страница записей для администратора. Номер страницы меньше 1 считается первой.
func (s *GuestbookService) AdminList(ctx context.Context, page int) (model.AdminListResponse, error) {
	if page < 1 {
		page = 1
	}

	// смещение такой страницы не помещается в int, строк на ней заведомо нет
	if page > maxAdminPage {
		total, err := s.count(ctx)
		if err != nil {
			return model.AdminListResponse{}, err
		}
		return model.AdminListResponse{Rows: []model.Entry{}, Total: total, Page: page}, nil
	}
	offset := (page - 1) * AdminPageSize

	rows, err := s.Repo.ListPage(ctx, AdminPageSize, offset)
	if err != nil {
		s.Logger.Error("failed to list entries page", zap.Int("page", page), zap.Error(err))
		return model.AdminListResponse{}, err
	}
	total, err := s.count(ctx)
	if err != nil {
		return model.AdminListResponse{}, err
	}
	return model.AdminListResponse{Rows: rows, Total: total, Page: page}, nil
}

func (s *GuestbookService) count(ctx context.Context) (int, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		s.Logger.Error("failed to count entries", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// AdminCreate импортирует запись без проверки полей.
func (s *GuestbookService) AdminCreate(ctx context.Context, req model.AdminCreateRequest) error {
	createdAt := repositories.FormatTime(s.now())
	if req.CreatedAt != nil && *req.CreatedAt != "" {
		createdAt = *req.CreatedAt
	}

	id, err := s.Repo.Create(ctx, model.NewEntry{
		Name:      req.Name,
		Message:   req.Message,
		Website:   model.NormalizeWebsite(req.Website),
		CreatedAt: createdAt,
	})
	if err != nil {
		s.Logger.Error("failed to import entry", zap.Error(err))
		return err
	}
	s.Logger.Info("entry imported", zap.Int64("id", id))
	return nil
}

// AdminUpdate перезаписывает запись. Пустой created_at сохраняет прежнее значение.
func (s *GuestbookService) AdminUpdate(ctx context.Context, req model.AdminUpdateRequest) error {
	createdAt := req.CreatedAt
	if createdAt != nil && *createdAt == "" {
		createdAt = nil
	}

	err := s.Repo.Update(ctx, model.EntryUpdate{
		ID:        req.ID,
		Name:      req.Name,
		Message:   req.Message,
		Website:   model.NormalizeWebsite(req.Website),
		CreatedAt: createdAt,
	})
	if err != nil {
		s.Logger.Error("failed to update entry", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}
	return nil
}

// AdminDelete удаляет запись.
func (s *GuestbookService) AdminDelete(ctx context.Context, req model.AdminDeleteRequest) error {
	if err := s.Repo.Delete(ctx, req.ID); err != nil {
		s.Logger.Error("failed to delete entry", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}
	return nil
}

// Ping проверяет доступность хранилища.
func (s *GuestbookService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}

package repositories

//go:generate mockgen -destination=../mocks/mock_repository.go -package=mocks github.com/Totarae/Guestbook/internal/repositories GuestbookRepository

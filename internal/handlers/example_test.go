package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Totarae/Guestbook/internal/auth"
	"github.com/Totarae/Guestbook/internal/handlers"
	"github.com/Totarae/Guestbook/internal/service"
	"github.com/Totarae/Guestbook/internal/storage"
	"go.uber.org/zap"
)

// ExampleHandler_CreateEntry демонстрирует добавление записи в гостевую книгу.
func ExampleHandler_CreateEntry() {
	logger := zap.NewNop()
	svc := service.NewGuestbookService(storage.NewMemoryStore(), auth.New("example-secret"), logger)
	h := handlers.NewHandler(svc, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/guestbook", strings.NewReader(`{"name":"Ann","message":"Nice site!"}`))
	rec := httptest.NewRecorder()
	h.CreateEntry(rec, req)

	fmt.Println(rec.Code)
	fmt.Print(rec.Body.String())

	// Output:
	// 200
	// {"success":true}
}

// ExampleHandler_Admin демонстрирует отказ при неверном секрете.
func ExampleHandler_Admin() {
	logger := zap.NewNop()
	svc := service.NewGuestbookService(storage.NewMemoryStore(), auth.New("example-secret"), logger)
	h := handlers.NewHandler(svc, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/admin", strings.NewReader(`{"action":"list","secret":"guess"}`))
	rec := httptest.NewRecorder()
	h.Admin(rec, req)

	fmt.Println(rec.Code)
	fmt.Print(rec.Body.String())

	// Output:
	// 401
	// {"error":"Invalid Secret"}
}

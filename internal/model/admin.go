package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Action закрытый набор действий административного эндпоинта.
type Action int

const (
	ActionList Action = iota + 1
	ActionCreate
	ActionUpdate
	ActionDelete
)

var actionNames = map[Action]string{
	ActionList:   "list",
	ActionCreate: "create",
	ActionUpdate: "update",
	ActionDelete: "delete",
}

// ParseAction разбирает значение поля action. Неизвестное значение возвращает ошибку.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// AdminEnvelope общие поля любого административного запроса.
type AdminEnvelope struct {
	Action string `json:"action"`
	Secret string `json:"secret"`
}

// AdminListRequest запрос страницы записей. Page == 0 означает первую страницу.
type AdminListRequest struct {
	Page PageNumber `json:"page"`
}

// PageNumber номер страницы. Принимает JSON-число или строку с целым числом,
// null и пустая строка дают 0.
type PageNumber int

func (p *PageNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("page %q is not an integer", s)
		}
		*p = PageNumber(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PageNumber(n)
	return nil
}

// AdminCreateRequest импорт записи без проверки полей.
type AdminCreateRequest struct {
	Name      string  `json:"name"`
	Message   string  `json:"message"`
	Website   *string `json:"website"`
	CreatedAt *string `json:"created_at"`
}

// AdminUpdateRequest перезапись изменяемых полей записи.
type AdminUpdateRequest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Message   string  `json:"message"`
	Website   *string `json:"website"`
	CreatedAt *string `json:"created_at"`
}

// AdminDeleteRequest удаление записи по ID.
type AdminDeleteRequest struct {
	ID int64 `json:"id"`
}

// AdminListResponse страница записей с общим количеством.
type AdminListResponse struct {
	Rows  []Entry `json:"rows"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
}

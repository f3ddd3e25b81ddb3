package model

// Entry представляет запись гостевой книги в том виде, в котором она отдаётся клиенту.
type Entry struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Message   string  `json:"message"`
	Website   *string `json:"website"`
	CreatedAt string  `json:"created_at"`
}

// NewEntry содержит поля для вставки новой записи.
// CreatedAt всегда заполнен: либо временем запроса, либо значением из импорта.
type NewEntry struct {
	Name      string
	Message   string
	Website   *string
	CreatedAt string
}

// EntryUpdate перезаписывает изменяемые поля записи с заданным ID.
// CreatedAt == nil оставляет сохранённое значение без изменений.
type EntryUpdate struct {
	ID        int64
	Name      string
	Message   string
	Website   *string
	CreatedAt *string
}

// NormalizeWebsite превращает пустой адрес сайта в nil, чтобы в БД попал NULL.
func NormalizeWebsite(website *string) *string {
	if website == nil || *website == "" {
		return nil
	}
	return website
}

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Auth проверяет общий секрет административного эндпоинта.
type Auth struct {
	key    []byte
	digest []byte
}

// New создаёт проверку для заданного секрета. Пустой секрет не пропускает никого.
func New(secret string) *Auth {
	a := &Auth{key: []byte("guestbook-admin")}
	if secret != "" {
		a.digest = a.sign(secret)
	}
	return a
}

// Создать подпись
func (a *Auth) sign(value string) []byte {
	mac := hmac.New(sha256.New, a.key)
	mac.Write([]byte(value))
	return mac.Sum(nil)
}

// Valid сравнивает секрет за постоянное время независимо от его длины.
func (a *Auth) Valid(secret string) bool {
	if a.digest == nil {
		return false
	}
	return hmac.Equal(a.sign(secret), a.digest)
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList - список строк, который хранится JSON-строкой в TEXT колонке
// (features, highlights, activities). Всегда сериализуется как массив, не null.
type StringList []string

// ParseStringList разбирает сохранённое значение.
// Пустое, отсутствующее или битое значение даёт пустой список, а не ошибку.
func ParseStringList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return StringList{}
	}
	return StringList(list)
}

// EncodeStringList кодирует список в JSON-строку для хранения
func EncodeStringList(list []string) string {
	if list == nil {
		return "[]"
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = ParseStringList(v)
	case []byte:
		*l = ParseStringList(string(v))
	default:
		return fmt.Errorf("string list: unsupported source type %T", src)
	}
	return nil
}

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	return EncodeStringList(l), nil
}

// MarshalJSON implements json.Marshaler
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

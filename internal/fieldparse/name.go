// Package fieldparse содержит чистые парсеры полей заявки: каждый извлекает
// одно типизированное значение из свободного текста пользователя и возвращает
// либо нормализованное значение, либо ok=false. Нераспознанный ввод — не
// ошибка, поэтому error здесь не используется.
package fieldparse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// ParseName нормализует имя: каждый токен с заглавной буквы, остальные буквы
// строчные, токены соединяются одиночными пробелами.
// Возвращает ok=false для ввода короче domain.MinNameLength символов.
func ParseName(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < domain.MinNameLength {
		return "", false
	}

	tokens := strings.Fields(trimmed)
	for i, token := range tokens {
		tokens[i] = titleCase(token)
	}

	return strings.Join(tokens, " "), true
}

// FirstName возвращает первый токен нормализованного имени (для приветствий).
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// titleCase переводит первый символ в верхний регистр, остальные — в нижний
func titleCase(token string) string {
	runes := []rune(strings.ToLower(token))
	if len(runes) == 0 {
		return token
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

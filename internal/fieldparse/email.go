package fieldparse

import (
	"regexp"
	"strings"
)

// emailPattern ищет первый email-подобный токен local@domain.tld (TLD минимум
// две буквы), ограниченный началом/концом строки, пробелом или знаком
// препинания.
var emailPattern = regexp.MustCompile(
	`(?i)(?:^|[\s.,!?;:()<>\[\]"'])` +
		`([a-z0-9._%+\-]+@(?:[a-z0-9\-]+\.)+[a-z]{2,})` +
		`(?:$|[\s.,!?;:()<>\[\]"'])`,
)

// ParseEmail извлекает первый email из текста и приводит его к нижнему
// регистру. Возвращает ok=false, если email не найден.
func ParseEmail(text string) (string, bool) {
	match := emailPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.ToLower(match[1]), true
}

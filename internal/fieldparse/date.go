package fieldparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

var (
	// yyyy-MM-dd
	isoDatePattern = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)

	// MM/dd/yyyy
	usDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)

	// Полные и сокращённые названия месяцев: "September 1", "Sep 1, 2026",
	// "1st"/"2nd"/... допускаются. Формы с днём недели ("Tuesday, September 1")
	// покрываются тем же шаблоном, потому что месяц ищется внутри строки.
	monthDayPattern = regexp.MustCompile(
		`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
			`jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)` +
			`\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`,
	)

	monthsByPrefix = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}

	// Запасные варианты для общего парсинга, когда ни один из основных
	// шаблонов не дал допустимой даты
	fallbackLayouts = []string{
		"2006-01-02",
		"01/02/2006",
		"January 2, 2006",
		"January 2 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"2 January 2006",
		"2 Jan 2006",
	}
)

// ParseDate извлекает календарную дату из текста и нормализует её в ISO
// "YYYY-MM-DD". Шаблоны проверяются в фиксированном порядке (ISO, MM/dd/yyyy,
// месяц-день с годом и без); отсутствующий год берётся из today. Принимается
// первая корректная дата, которая не раньше сегодняшнего дня; сегодняшняя дата
// допустима. Возвращает ok=false, если дату извлечь не удалось.
func ParseDate(text string, today time.Time) (string, bool) {
	if date, ok := parseISO(text, today); ok {
		return date, true
	}
	if date, ok := parseUS(text, today); ok {
		return date, true
	}
	if date, ok := parseMonthDay(text, today); ok {
		return date, true
	}
	return parseFallback(text, today)
}

func parseISO(text string, today time.Time) (string, bool) {
	match := isoDatePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])
	return normalizeDate(year, time.Month(month), day, today)
}

func parseUS(text string, today time.Time) (string, bool) {
	match := usDatePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	return normalizeDate(year, time.Month(month), day, today)
}

func parseMonthDay(text string, today time.Time) (string, bool) {
	match := monthDayPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	monthToken := strings.ToLower(match[1])
	if len(monthToken) > 3 {
		monthToken = monthToken[:3]
	}
	month, ok := monthsByPrefix[monthToken]
	if !ok {
		return "", false
	}

	day, _ := strconv.Atoi(match[2])

	// Год не указан — подставляем текущий
	year := today.Year()
	if match[3] != "" {
		year, _ = strconv.Atoi(match[3])
	}

	return normalizeDate(year, month, day, today)
}

// parseFallback пробует распарсить обрезанную строку целиком по запасным
// форматам с тем же ограничением "не раньше сегодня"
func parseFallback(text string, today time.Time) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range fallbackLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if date, ok := normalizeDate(parsed.Year(), parsed.Month(), parsed.Day(), today); ok {
			return date, true
		}
	}
	return "", false
}

// normalizeDate собирает дату, отвергает несуществующие дни (31 февраля и
// т.п.) и даты строго раньше сегодняшнего дня, возвращает ISO строку
func normalizeDate(year int, month time.Month, day int, today time.Time) (string, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return "", false
	}

	candidate := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	// time.Date нормализует переполнение (например, Feb 30 -> Mar 2);
	// несовпадение после сборки означает несуществующую дату
	if candidate.Year() != year || candidate.Month() != month || candidate.Day() != day {
		return "", false
	}

	todayOnly := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if candidate.Before(todayOnly) {
		return "", false
	}

	return candidate.Format(domain.DateFormat), true
}

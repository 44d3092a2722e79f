package process_turn

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// humanSlotLayout: "Monday, September 1 at 9:00 AM"
const humanSlotLayout = "Monday, January 2 at 3:04 PM"

// formatSlot отображает слот в человекочитаемом виде: полный день недели,
// полное название месяца, 12-часовое время. Если задан timezone, он
// добавляется в скобках. При невалидной паре дата/время (не должно случаться
// после валидации выше по потоку) — простой вид "<date> at <time>".
func formatSlot(slot domain.Slot, timezone string) string {
	var rendered string

	instant, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, slot.Date+" "+slot.Time.String())
	if err != nil {
		rendered = fmt.Sprintf("%s at %s", slot.Date, slot.Time)
	} else {
		rendered = instant.Format(humanSlotLayout)
	}

	if timezone != "" {
		rendered += fmt.Sprintf(" (%s)", timezone)
	}

	return rendered
}

// formatAlternatives отображает альтернативные слоты нумерованным списком
func formatAlternatives(slots []domain.Slot) string {
	lines := make([]string, len(slots))
	for i, slot := range slots {
		lines[i] = fmt.Sprintf("%d. %s", i+1, formatSlot(slot, ""))
	}
	return strings.Join(lines, "\n")
}

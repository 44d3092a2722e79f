package process_turn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

func TestFormatSlot(t *testing.T) {
	slot := domain.Slot{Date: "2026-03-05", Time: "14:00"}

	assert.Equal(t, "Thursday, March 5 at 2:00 PM", formatSlot(slot, ""))
	assert.Equal(t, "Thursday, March 5 at 2:00 PM (CET)", formatSlot(slot, "CET"))

	morning := domain.Slot{Date: "2026-03-09", Time: "09:00"}
	assert.Equal(t, "Monday, March 9 at 9:00 AM", formatSlot(morning, ""))

	// Невалидная пара рендерится простым видом
	broken := domain.Slot{Date: "not-a-date", Time: "14:00"}
	assert.Equal(t, "not-a-date at 14:00", formatSlot(broken, ""))
}

func TestFormatAlternatives(t *testing.T) {
	got := formatAlternatives([]domain.Slot{
		{Date: "2026-03-05", Time: "09:00"},
		{Date: "2026-03-05", Time: "11:30"},
	})

	assert.Equal(t,
		"1. Thursday, March 5 at 9:00 AM\n2. Thursday, March 5 at 11:30 AM",
		got)
}

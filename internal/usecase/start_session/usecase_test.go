package start_session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp := uc.Execute(context.Background())

	assert.Equal(t, domain.StepNeedName, resp.State.Step)
	assert.Equal(t, domain.AppointmentDraft{}, resp.State.Draft)
	assert.Nil(t, resp.State.PendingSlot)

	// Приветствие ровно одно
	require.Len(t, resp.Greeting, 1)
	assert.NotEmpty(t, resp.Greeting[0])
}

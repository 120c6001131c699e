package scheduler

import (
	"testing"
	"time"

	"github.com/precifica/cost-manager-api/internal/config"
	"github.com/precifica/cost-manager-api/internal/usecases/insighting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		InsightSnapshotSync: config.InsightSnapshotSync{
			CronSchedule: "0 4 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	service := NewInsightSnapshotSyncService(mockInsighter, newTestConfig(true))

	t.Run("executa o snapshot e registra o horário", func(t *testing.T) {
		mockInsighter.EXPECT().SnapshotAll(gomock.Any()).Return(3, nil)

		err := service.RunSnapshot()
		assert.NoError(t, err)

		status := service.GetStatus()
		assert.False(t, status["sync_running"].(bool))
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("propaga o erro do cálculo", func(t *testing.T) {
		mockInsighter.EXPECT().SnapshotAll(gomock.Any()).Return(0, assert.AnError)

		err := service.RunSnapshot()
		assert.Error(t, err)
	})
}

func TestRunSnapshotJaEmExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	service := NewInsightSnapshotSyncService(mockInsighter, newTestConfig(true))

	// Simula execução em andamento; nenhuma chamada ao serviço deve ocorrer
	service.syncRunning = true

	err := service.RunSnapshot()
	assert.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	service := NewInsightSnapshotSyncService(mockInsighter, newTestConfig(false))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 4 * * *", status["sync_cron"])
}

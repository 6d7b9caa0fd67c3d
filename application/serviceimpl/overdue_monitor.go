package serviceimpl

import (
	"context"
	"time"

	"tasktracker/domain/repositories"
	"tasktracker/pkg/logger"
)

// OverdueMonitor periodically reports how many tasks are past their end time
// but still pending. Scheduled from the DI container.
type OverdueMonitor struct {
	taskRepo repositories.TaskRepository
}

func NewOverdueMonitor(taskRepo repositories.TaskRepository) *OverdueMonitor {
	return &OverdueMonitor{taskRepo: taskRepo}
}

func (m *OverdueMonitor) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := m.taskRepo.CountOverduePending(ctx, time.Now())
	if err != nil {
		logger.Error("Overdue task check failed", "error", err)
		return
	}

	if count > 0 {
		logger.Warn("Overdue pending tasks detected", "count", count)
	} else {
		logger.Debug("No overdue pending tasks")
	}
}

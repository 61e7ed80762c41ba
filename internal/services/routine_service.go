package services

import (
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/logger"
	"github.com/vorathons/memory-mate/internal/store"
)

// RoutineService exposes the daily routine. The task set is fixed;
// toggling completion is the only mutation.
type RoutineService struct {
	routines *store.RoutineStore
}

func NewRoutineService(routines *store.RoutineStore) *RoutineService {
	return &RoutineService{routines: routines}
}

func (s *RoutineService) List() []domain.RoutineTask {
	return s.routines.List()
}

func (s *RoutineService) Toggle(id string) (domain.RoutineTask, error) {
	task, err := s.routines.Toggle(id)
	if err != nil {
		return domain.RoutineTask{}, err
	}
	logger.Info("Routine task toggled", "task_id", task.ID, "completed", task.Completed)
	return task, nil
}

package usecase

import (
	"fmt"
	"strconv"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
	"planner-backend/pkg/datatypes"
	"planner-backend/pkg/fuzzy"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID string, req TaskCreateRequest) (*domain.Task, error) {
	dueDate, err := datatypes.ParseDate(req.DueDate)
	if err != nil {
		return nil, invalid(err)
	}

	task := &domain.Task{
		UserID:    userID,
		Title:     req.Title,
		DueDate:   dueDate,
		Duration:  req.Duration,
		Tag:       parseTag(req.Tag),
		Completed: req.Completed,
	}
	if err := task.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, query ListQuery) ([]*domain.Task, error) {
	var filter repository.TaskFilter
	if query.Tag != "" {
		tag := domain.Tag(query.Tag)
		if !tag.Valid() {
			return nil, invalid(domain.ErrUnknownTag)
		}
		filter.Tag = &tag
	}
	if query.Completed != "" {
		completed, err := strconv.ParseBool(query.Completed)
		if err != nil {
			return nil, fmt.Errorf("%w: completed must be true or false", ErrInvalidInput)
		}
		filter.Completed = &completed
	}

	tasks, err := u.taskRepo.FindByUserID(userID, filter)
	if err != nil || query.Search == "" {
		return tasks, err
	}

	matched := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if fuzzy.Match(query.Search, task.Title) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.DueDate != nil {
		dueDate, err := datatypes.ParseDate(*updates.DueDate)
		if err != nil {
			return nil, invalid(err)
		}
		task.DueDate = dueDate
	}
	if updates.Duration != nil {
		task.Duration = *updates.Duration
	}
	if updates.Tag != nil {
		task.Tag = domain.Tag(*updates.Tag)
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}

	if err := task.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	deleted, err := u.taskRepo.Delete(userID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func parseTag(t string) domain.Tag {
	if t == "" {
		return domain.TagInbox
	}
	return domain.Tag(t)
}

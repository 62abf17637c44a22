package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	t := model.Task{
		ID:               uuid.NewString(),
		Title:            opt.Title,
		Description:      opt.Description,
		Status:           opt.Status,
		Priority:         opt.Priority,
		Tags:             copyTags(opt.Tags),
		DueDate:          opt.DueDate,
		EstimatedMinutes: opt.EstimatedMinutes,
		AISuggested:      opt.AISuggested,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if t.Status == "" {
		t.Status = model.StatusPending
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	r.tasks[t.ID] = t
	r.l.Debugf(ctx, "memory.CreateTask: id=%s title=%q", t.ID, t.Title)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Tag != "" && !t.HasTag(opt.Tag) {
			continue
		}
		matched = append(matched, t)
	}

	// Newest first; ID as tiebreaker for a stable order.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			return []model.Task{}, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}

	return matched, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.UpdatedAt = r.now()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func copyTags(tags []model.Tag) []model.Tag {
	if tags == nil {
		return nil
	}
	out := make([]model.Tag, len(tags))
	copy(out, tags)
	return out
}

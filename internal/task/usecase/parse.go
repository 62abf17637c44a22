package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/task"
)

func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Input) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	draft := uc.eng.ParseTask(input.Input, uc.now())
	uc.l.Debugf(ctx, "task.usecase.Parse: priority=%s tags=%v", draft.Priority, draft.Tags)

	return task.ParseOutput{Draft: draft}, nil
}

package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/task"
)

func (uc *implUseCase) SuggestBreakdown(ctx context.Context, input task.BreakdownInput) (task.BreakdownOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.BreakdownOutput{}, task.ErrEmptyTitle
	}

	bd := uc.eng.SuggestBreakdown(input.Title, input.Description)
	uc.l.Debugf(ctx, "task.usecase.SuggestBreakdown: %d subtasks", len(bd.Subtasks))
	return task.BreakdownOutput{Breakdown: bd}, nil
}

package usecase

import (
	"context"
	"strings"

	"quick-capture/internal/task"
)

// Parse runs the parser without persisting anything. Useful for live
// previews while the user types.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Input) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	lang, parser, err := uc.parserFor(input.Language)
	if err != nil {
		return task.ParseOutput{}, err
	}

	parsed := parser.Parse(input.Input, uc.referenceTime(input.ReferenceTime))

	return task.ParseOutput{
		Language: lang,
		Result:   parsed,
	}, nil
}

// Languages lists the language codes this instance can parse, sorted.
func (uc *implUseCase) Languages(ctx context.Context) []string {
	return append([]string(nil), uc.codes...)
}

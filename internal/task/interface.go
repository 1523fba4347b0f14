package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Capture parses free-form text and stores the resulting task.
	Capture(ctx context.Context, input CaptureInput) (CaptureOutput, error)

	// Parse runs the parser without persisting anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Languages lists the language codes this instance can parse.
	Languages(ctx context.Context) []string
}

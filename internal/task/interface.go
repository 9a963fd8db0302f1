package task

import "context"

// UseCase processes the list's user events. Every mutating call persists a
// full snapshot and returns the freshly ranked list for re-rendering.
type UseCase interface {
	// Init loads the persisted list into memory. Call once before serving.
	Init(ctx context.Context) error

	List(ctx context.Context) (ListOutput, error)
	Add(ctx context.Context, input AddInput) (TaskOutput, error)
	Delete(ctx context.Context, id string) (ListOutput, error)
	BeginEdit(ctx context.Context, id string) (TaskOutput, error)
	CancelEdit(ctx context.Context, id string) (TaskOutput, error)
	SaveEdit(ctx context.Context, input SaveEditInput) (TaskOutput, error)

	// Suggest recommends one task. Finding nothing is a normal result, not an error.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}

package httpadapter

import "context"

type promptCtxKey int

const (
	confirmCtxKey promptCtxKey = iota
	nameCtxKey
)

// WithConfirm records the caller's answer to a destructive-action prompt.
func WithConfirm(ctx context.Context, ok bool) context.Context {
	return context.WithValue(ctx, confirmCtxKey, ok)
}

// WithProvidedName records a name supplied in the request body.
func WithProvidedName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameCtxKey, name)
}

// RequestConfirmer answers confirmation prompts from the confirm flag the
// HTTP layer stashed in the request context. Absent flag means declined.
type RequestConfirmer struct{}

func (RequestConfirmer) Confirm(ctx context.Context, prompt string) bool {
	ok, _ := ctx.Value(confirmCtxKey).(bool)
	return ok
}

// RequestNamePrompter answers name prompts from the request body field.
type RequestNamePrompter struct{}

func (RequestNamePrompter) PromptName(ctx context.Context, prompt string) (string, bool) {
	name, ok := ctx.Value(nameCtxKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

package logging

import "context"

type opKey struct{}

// WithOp returns a context whose log entries carry op=<op>.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey{}, op)
}

// OpFrom returns the operation stored by WithOp.
func OpFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	op, ok := ctx.Value(opKey{}).(string)
	return op, ok && op != ""
}

// withOpArgs prepends the context operation to args.
func withOpArgs(ctx context.Context, args []any) []any {
	op, ok := OpFrom(ctx)
	if !ok {
		return args
	}
	return append([]any{"op", op}, args...)
}

package middleware

import "context"

type ctxKey string

const (
	ctxUserID   ctxKey = "user_id"
	ctxUserName ctxKey = "user_name"
	ctxEmail    ctxKey = "email"
)

func WithIdentity(ctx context.Context, userID, userName, email string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUserName, userName)
	ctx = context.WithValue(ctx, ctxEmail, email)
	return ctx
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserID).(string)
	return v, ok && v != ""
}

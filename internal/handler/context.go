package handler

type ContextKey string

var (
	SubCtxKey        ContextKey = "sub"
	TokenCtxKey      ContextKey = "token"
	BusinessIDCtxKey ContextKey = "businessId"
	EmailCtxKey      ContextKey = "email"
)

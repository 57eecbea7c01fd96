package context

import (
	"context"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetActor returns the actor resolved by the auth middleware.
func GetActor(ctx context.Context) (*model.Actor, bool) {
	actor, ok := ctx.Value(constant.ActorKey).(*model.Actor)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}

func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, actor.UserID)
	return context.WithValue(ctx, constant.ActorKey, actor)
}

package audit

import (
	"context"
	"time"
)

// SystemActor is recorded when a change happens outside an HTTP request,
// for example from the migrate command.
const SystemActor = "system"

type Actor struct {
	ID        string
	Email     string
	RequestID string
}

type Event struct {
	Table    string
	RecordID string
	Action   string

	Actor Actor

	OldData       map[string]any
	NewData       map[string]any
	ChangedFields []string

	OccurredAt time.Time
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor stored in ctx. A missing actor id is
// reported as SystemActor.
func ActorFrom(ctx context.Context) Actor {
	var a Actor
	if ctx != nil {
		a, _ = ctx.Value(actorKey{}).(Actor)
	}
	if a.ID == "" {
		a.ID = SystemActor
	}
	return a
}

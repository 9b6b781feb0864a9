package cache

import (
	"context"
	"time"
)

// Noop is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (Noop) Set(context.Context, string, []byte, time.Duration) {}

func (Noop) Invalidate(context.Context) {}

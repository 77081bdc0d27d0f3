package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapStore_PanicsWhenReached(t *testing.T) {
	trap := NewTrapStore()

	assert.PanicsWithValue(t,
		"storage: TrapStore.Exists invoked; no real identifier store is configured",
		func() {
			_, _ = trap.Exists(context.Background(), 3000)
		})

	assert.PanicsWithValue(t,
		"storage: TrapStore.Reserve invoked; no real identifier store is configured",
		func() {
			_ = trap.Reserve(context.Background(), 3000, "test")
		})
}

package storage

import (
	"context"
	"fmt"
	"os"
)

// TrapStore stands in for the registry in assemblies that have no
// database configured. Every method panics: if a check path reaches it,
// the wrong collaborator is wired in, and we want that to be loud
// rather than silently returning a guess. Tests substitute their own
// stub and must never hit these.
type TrapStore struct{}

func NewTrapStore() *TrapStore {
	return &TrapStore{}
}

func (TrapStore) Exists(ctx context.Context, id uint64) (bool, error) {
	// Diagnostic goes to stdout, like the trap it replaces.
	fmt.Fprintln(os.Stdout, "..... TrapStore.Exists wasn't supposed to be called")
	panic("storage: TrapStore.Exists invoked; no real identifier store is configured")
}

// Reserve represents the hand-off to registry write logic elsewhere in
// the system. Nothing in the check paths calls it.
func (TrapStore) Reserve(ctx context.Context, id uint64, source string) error {
	fmt.Fprintln(os.Stdout, "..... TrapStore.Reserve wasn't supposed to be called")
	panic("storage: TrapStore.Reserve invoked; no real identifier store is configured")
}

package validator

import (
	"context"
	"fmt"
)

// Acceptable identifiers live strictly inside this open interval.
// Both bounds are exclusive: 1000 and 10000 themselves are rejected.
const (
	LowerBound uint64 = 1000
	UpperBound uint64 = 10000
)

// ExistenceChecker answers whether an identifier is already present in
// the backing registry. The validator does not construct or own the
// checker; callers inject a real store, a trap, or a test stub.
type ExistenceChecker interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

// ExistenceFunc adapts a plain function to the ExistenceChecker interface.
type ExistenceFunc func(ctx context.Context, id uint64) (bool, error)

func (f ExistenceFunc) Exists(ctx context.Context, id uint64) (bool, error) {
	return f(ctx, id)
}

// Validator decides whether a candidate identifier is acceptable.
// It is stateless apart from the injected checker.
type Validator struct {
	checker ExistenceChecker
}

func New(checker ExistenceChecker) *Validator {
	return &Validator{checker: checker}
}

// IsAcceptable reports whether id may be used.
//
// The existence check runs first, unconditionally: an identifier that
// already exists is rejected before the range is consulted. Otherwise
// the identifier is acceptable iff LowerBound < id < UpperBound.
func (v *Validator) IsAcceptable(ctx context.Context, id uint64) (bool, error) {
	exists, err := v.checker.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("existence check failed for id %d: %w", id, err)
	}
	if exists {
		return false, nil
	}

	return id > LowerBound && id < UpperBound, nil
}

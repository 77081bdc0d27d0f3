package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neverExists mirrors the stub used when testing against an empty registry.
var neverExists = ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
	return false, nil
})

var alwaysExists = ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
	return true, nil
})

func TestIsAcceptable_RangeBounds(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
		want bool
	}{
		{"Far Below", 10, false},
		{"Below", 100, false},
		{"Lower Bound Excluded", 1000, false},
		{"Just Above Lower", 1001, true},
		{"Mid Range", 3000, true},
		{"Mid Range High", 5000, true},
		{"Just Below Upper", 9999, true},
		{"Upper Bound Excluded", 10000, false},
		{"Above", 50000, false},
		{"Zero", 0, false},
	}

	v := New(neverExists)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.IsAcceptable(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsAcceptable_ExistingIDRejected(t *testing.T) {
	// Existence wins regardless of range.
	v := New(alwaysExists)

	for _, id := range []uint64{10, 1000, 3000, 5000, 9999, 10000} {
		ok, err := v.IsAcceptable(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, ok, "id %d should be rejected when it already exists", id)
	}
}

func TestIsAcceptable_ExistenceCheckedFirst(t *testing.T) {
	// The checker must be consulted exactly once, before any range logic.
	calls := 0
	recording := ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
		calls++
		return true, nil
	})

	v := New(recording)
	ok, err := v.IsAcceptable(context.Background(), 5000)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestIsAcceptable_CheckerError(t *testing.T) {
	boom := errors.New("connection refused")
	failing := ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
		return false, boom
	})

	v := New(failing)
	ok, err := v.IsAcceptable(context.Background(), 3000)
	assert.False(t, ok)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"idgate/internal/validator"
)

func stubConnect(checker validator.ExistenceChecker) connectFunc {
	return func(ctx context.Context) (validator.ExistenceChecker, func(), error) {
		return checker, func() {}, nil
	}
}

var emptyRegistry = validator.ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
	return false, nil
})

func TestParseID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{"Plain", "3000", 3000},
		{"Zero", "0", 0},
		{"Explicit Plus", "+42", 42},
		{"Negative Clamped", "-7", 0},
		{"Empty", "", 0},
		{"Non Numeric", "abc", 0},
		{"Trailing Garbage", "123abc", 123},
		{"Sign Only", "+", 0},
		{"Large", "18446744073709551615", 18446744073709551615},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseID(tt.input))
		})
	}
}

func TestRun_MissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"/usr/local/bin/idcheck"}, &stdout, &stderr, stubConnect(emptyRegistry))

	assert.Equal(t, 1, code)
	assert.Equal(t, "Usage: idcheck <id>\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRun_AcceptableID(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"idcheck", "3000"}, &stdout, &stderr, stubConnect(emptyRegistry))

	assert.Equal(t, 0, code)
	assert.Equal(t, "ID is acceptable: 1\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_UnacceptableIDStillExitsZero(t *testing.T) {
	// An unacceptable identifier is a normal result, not a failure.
	var stdout, stderr bytes.Buffer

	code := run([]string{"idcheck", "100"}, &stdout, &stderr, stubConnect(emptyRegistry))

	assert.Equal(t, 0, code)
	assert.Equal(t, "ID is acceptable: 0\n", stdout.String())
}

func TestRun_NonNumericArgumentParsesToZero(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"idcheck", "abc"}, &stdout, &stderr, stubConnect(emptyRegistry))

	assert.Equal(t, 0, code)
	assert.Equal(t, "ID is acceptable: 0\n", stdout.String())
}

func TestRun_ExistingIDRejected(t *testing.T) {
	taken := validator.ExistenceFunc(func(ctx context.Context, id uint64) (bool, error) {
		return true, nil
	})
	var stdout, stderr bytes.Buffer

	code := run([]string{"idcheck", "3000"}, &stdout, &stderr, stubConnect(taken))

	assert.Equal(t, 0, code)
	assert.Equal(t, "ID is acceptable: 0\n", stdout.String())
}

func TestRun_ConnectFailure(t *testing.T) {
	failing := connectFunc(func(ctx context.Context) (validator.ExistenceChecker, func(), error) {
		return nil, nil, errors.New("failed to ping db")
	})
	var stdout, stderr bytes.Buffer

	code := run([]string{"idcheck", "3000"}, &stdout, &stderr, failing)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to ping db")
	assert.Empty(t, stdout.String())
}

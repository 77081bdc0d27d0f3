// idcheck answers whether a single identifier is acceptable.
//
// With DATABASE_URL set it consults the real registry; without it the
// trap store is wired in, so a run that reaches the lookup fails loudly
// instead of inventing an answer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"idgate/internal/storage"
	"idgate/internal/validator"
)

// parseID converts the argument with C atoi permissiveness: optional
// sign, then leading decimal digits; anything else yields 0.
func parseID(s string) uint64 {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n uint64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + uint64(s[i]-'0')
	}

	if neg {
		// Negative input is meaningless for an unsigned identifier and
		// lands outside the acceptable range either way.
		return 0
	}
	return n
}

// connectFunc wires the existence-check collaborator. It returns the
// checker plus a release func for any underlying connection.
type connectFunc func(ctx context.Context) (validator.ExistenceChecker, func(), error)

func run(args []string, stdout, stderr io.Writer, connect connectFunc) int {
	if len(args) < 2 {
		fmt.Fprintf(stderr, "Usage: %s <id>\n", filepath.Base(args[0]))
		return 1
	}

	ctx := context.Background()
	checker, release, err := connect(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "idcheck: %v\n", err)
		return 1
	}
	defer release()

	id := parseID(args[1])

	ok, err := validator.New(checker).IsAcceptable(ctx, id)
	if err != nil {
		fmt.Fprintf(stderr, "idcheck: %v\n", err)
		return 1
	}

	result := 0
	if ok {
		result = 1
	}
	fmt.Fprintf(stdout, "ID is acceptable: %d\n", result)
	return 0
}

func main() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	os.Exit(run(os.Args, os.Stdout, os.Stderr, func(ctx context.Context) (validator.ExistenceChecker, func(), error) {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return storage.NewTrapStore(), func() {}, nil
		}

		pool, err := storage.NewPostgres(ctx, dbURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewIdentifierStore(pool), pool.Close, nil
	}))
}

package result_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ezavala/result"
	"github.com/ezavala/result/option"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Both types are immutable values, so a single instance may be chained
// from many goroutines at once without synchronization.
func TestResult_SharedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	const workers = 16

	shared := result.Ok[int, string](21)
	missing := option.None[int]()

	var eg errgroup.Group

	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			r := result.Map(shared, func(v int) int { return v * 2 })
			if got := r.Unwrap(); got != 42 {
				return fmt.Errorf("mapped value is %d, want 42", got)
			}

			if !shared.IsOk() {
				return errors.New("shared result changed variant")
			}

			if got := result.OkOr(missing, "gone"); !got.IsErr() {
				return errors.New("shared option changed variant")
			}

			return nil
		})
	}

	require.NoError(t, eg.Wait())
}

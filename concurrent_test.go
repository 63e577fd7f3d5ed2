package apint

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/sync/errgroup"
)

// Values are immutable, so a shared operand can be read by any number of
// goroutines at once. Run with -race to catch a write that sneaks in.
func TestConcurrentSharedOperands(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	limbs := InlineLimbs / 2
	if heapAvailable {
		limbs = 4 * InlineLimbs
	}
	shared := IntFromNat(true, RandNat(rng, limbs))
	bs := shared.AsBigInt()

	operands := make([]Int, 64)
	for i := range operands {
		operands[i] = IntFromNat(rng.Intn(2) == 0, RandNat(rng, limbs/2+1))
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for i, op := range operands {
		i, op := i, op // per-iteration copies (go directive is 1.21)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bo := op.AsBigInt()

			if err := checkEqualInt(shared.Add(op), new(big.Int).Add(bs, bo)); err != nil {
				return fmt.Errorf("%d add: %w", i, err)
			}
			if err := checkEqualInt(shared.Mul(op), new(big.Int).Mul(bs, bo)); err != nil {
				return fmt.Errorf("%d mul: %w", i, err)
			}
			if op.IsZero() {
				return nil
			}
			q, r, err := shared.QuoRem(op)
			if err != nil {
				return err
			}
			bq, br := new(big.Int).QuoRem(bs, bo, new(big.Int))
			if err := checkEqualInt(q, bq); err != nil {
				return fmt.Errorf("%d quo: %w", i, err)
			}
			if err := checkEqualInt(r, br); err != nil {
				return fmt.Errorf("%d rem: %w", i, err)
			}
			return nil
		})
	}
	tt.MustOK(g.Wait())

	// The shared operand is untouched:
	tt.MustOK(checkEqualInt(shared, bs))
}

package rotation

import (
	"RotationDivisors/mp"
	"context"
	"golang.org/x/sync/errgroup"
)

// SumParallel computes the same value as Sum with the pairs spread over at
// most workers goroutines. Contributions are reduced in pair order once all
// of them are in.
func SumParallel(ctx context.Context, c Config, workers int) (uint64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if workers < 1 {
		workers = 1
	}

	pairs := Pairs()
	contributions := make([]uint64, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, pair := range pairs {
		i, pair := i, pair
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := c.contribution(pair)
			if err != nil {
				return err
			}
			contributions[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	modulus := c.Modulus()
	total := Repdigits(c.Digits, c.Width)
	for _, v := range contributions {
		total = mp.AddMod(total, v, modulus)
	}
	return total, nil
}

package linescan

import (
	"sync/atomic"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Scanner is the read-only win check run after every move.
type Scanner struct {
	strategies []Strategy
	parallel   bool
}

type Option func(*Scanner)

// WithParallel runs the axis strategies concurrently. The grid must not be written meanwhile.
func WithParallel(parallel bool) Option {
	return func(that *Scanner) {
		that.parallel = parallel
	}
}

func WithStrategies(strategies ...Strategy) Option {
	return func(that *Scanner) {
		that.strategies = strategies
	}
}

func New(opts ...Option) *Scanner {
	scanner := &Scanner{
		strategies: AllStrategies(),
	}

	for _, opt := range opts {
		opt(scanner)
	}

	return scanner
}

func (that *Scanner) HasWon(participant entity.Participant, grid *entity.Grid) bool {
	if that.parallel {
		return that.hasWonParallel(participant, grid)
	}

	_, won := that.WinningAxis(participant, grid)

	return won
}

// WinningAxis reports the first axis, in strategy order, holding a winning run.
func (that *Scanner) WinningAxis(participant entity.Participant, grid *entity.Grid) (string, bool) {
	for _, strategy := range that.strategies {
		if strategy.HasWon(participant, grid) {
			return strategy.Axis(), true
		}
	}

	return "", false
}

func (that *Scanner) hasWonParallel(participant entity.Participant, grid *entity.Grid) bool {
	var (
		won   atomic.Bool
		group errgroup.Group
	)

	for _, strategy := range that.strategies {
		group.Go(func() error {
			if won.Load() {
				return nil
			}

			if strategy.HasWon(participant, grid) {
				won.Store(true)
			}

			return nil
		})
	}

	// strategies never fail
	_ = group.Wait()

	return won.Load()
}

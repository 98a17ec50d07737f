package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// BotService picks uniformly among the legal columns.
type BotService struct {
	rng *rand.Rand
}

// NewBotService seeds the generator; seed 0 means time based.
func NewBotService(seed uint64) *BotService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &BotService{
		rng: rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint: gosec // it's ok
	}
}

func (that *BotService) ProvideMove(_ context.Context, _ entity.Participant, grid *entity.Grid) (int, error) {
	availableColumns := grid.LegalColumns()
	if len(availableColumns) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	return availableColumns[that.rng.IntN(len(availableColumns))], nil
}

package generator

import (
	"math/rand/v2"
	"slices"
	"time"

	"lotto/internal/domain/entity"
	"lotto/internal/domain/value"
	"lotto/pkg/lox"
)

// Random выбирает TicketSize различных чисел из [MinNumber, MaxNumber].
// Качество случайности не гарантируется.
type Random struct {
	rnd *rand.Rand
}

// NewRandom с нулевым seed берёт seed из текущего времени.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // not a security boundary
	}

	return &Random{
		rnd: rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint:gosec // for game only
	}
}

// Generate возвращает числа по возрастанию.
func (g *Random) Generate() []int {
	perm := g.rnd.Perm(value.MaxNumber - value.MinNumber + 1)[:entity.TicketSize]

	numbers := lox.Map(perm, func(offset int) int {
		return offset + value.MinNumber
	})
	slices.Sort(numbers)

	return numbers
}

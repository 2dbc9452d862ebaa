package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lotto/internal/domain/entity"
	"lotto/internal/domain/value"
)

func mustLotto(t *testing.T, numbers ...int) entity.Lotto {
	t.Helper()

	lotto, err := entity.NewLotto(numbers)
	require.NoError(t, err)

	return lotto
}

func TestNewWinningLotto(t *testing.T) {
	rq := require.New(t)

	winning := mustLotto(t, 1, 2, 3, 4, 5, 6)

	w, err := entity.NewWinningLotto(winning, 7)
	rq.NoError(err)
	rq.Equal(value.LottoNumber(7), w.Bonus())
	rq.Equal(winning.Ints(), w.Lotto().Ints())

	_, err = entity.NewWinningLotto(winning, 1)

	var dupErr *entity.BonusNumberDuplicatedError
	rq.ErrorAs(err, &dupErr)
	rq.Equal(1, dupErr.Bonus)
	rq.Equal([]int{1, 2, 3, 4, 5, 6}, dupErr.Numbers)

	_, err = entity.NewWinningLotto(winning, 46)

	var rangeErr *value.OutOfRangeError
	rq.ErrorAs(err, &rangeErr)
	rq.Equal(46, rangeErr.Value)
}

func TestWinningLottoMatch(t *testing.T) {
	winning, err := entity.NewWinningLotto(mustLotto(t, 1, 2, 3, 4, 5, 6), 7)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		ticket []int
		rank   entity.Rank
	}{
		{name: "Six matches", ticket: []int{6, 5, 4, 3, 2, 1}, rank: entity.First},
		{name: "Five matches and bonus", ticket: []int{1, 2, 3, 4, 5, 7}, rank: entity.Second},
		{name: "Five matches", ticket: []int{1, 2, 3, 4, 5, 8}, rank: entity.Third},
		{name: "Four matches", ticket: []int{1, 2, 3, 4, 8, 9}, rank: entity.Fourth},
		{name: "Four matches and bonus", ticket: []int{1, 2, 3, 4, 7, 9}, rank: entity.Fourth},
		{name: "Three matches", ticket: []int{1, 2, 3, 8, 9, 10}, rank: entity.Fifth},
		{name: "Two matches and bonus", ticket: []int{1, 2, 7, 8, 9, 10}, rank: entity.Miss},
		{name: "No matches", ticket: []int{40, 41, 42, 43, 44, 45}, rank: entity.Miss},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.rank, winning.Match(mustLotto(t, tc.ticket...)))
		})
	}
}

func TestRank(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]entity.Rank{entity.Fifth, entity.Fourth, entity.Third, entity.Second, entity.First, entity.Miss}, entity.Ranks())

	for _, rank := range entity.Ranks() {
		rq.Equal(rank, entity.RankOf(rank.MatchCount(), rank == entity.Second))
	}

	rq.Equal("second", entity.Second.String())
	rq.Equal("miss", entity.Miss.String())
}

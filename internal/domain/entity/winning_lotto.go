package entity

import (
	"fmt"

	"lotto/internal/domain/value"
)

// BonusNumberDuplicatedError бонусное число уже есть среди выигрышных.
type BonusNumberDuplicatedError struct {
	Numbers []int
	Bonus   int
}

func (e *BonusNumberDuplicatedError) Error() string {
	return fmt.Sprintf("bonus number %d is already one of the winning numbers %v", e.Bonus, e.Numbers)
}

// WinningLotto результат тиража: выигрышный билет и бонусное число вне его.
type WinningLotto struct {
	lotto Lotto
	bonus value.LottoNumber
}

// NewWinningLotto отклоняет бонус, если winning.Contains(bonus) истинно, и принимает, если ложно.
func NewWinningLotto(winning Lotto, bonus int) (WinningLotto, error) {
	bonusNumber, err := value.ParseLottoNumber(bonus)
	if err != nil {
		return WinningLotto{}, err
	}

	if winning.Contains(bonus) {
		return WinningLotto{}, &BonusNumberDuplicatedError{Numbers: winning.Ints(), Bonus: bonus}
	}

	return WinningLotto{lotto: winning, bonus: bonusNumber}, nil
}

func (w WinningLotto) Lotto() Lotto {
	return w.lotto
}

func (w WinningLotto) Bonus() value.LottoNumber {
	return w.bonus
}

func (w WinningLotto) Match(ticket Lotto) Rank {
	return RankOf(w.lotto.MatchCount(ticket), ticket.Contains(w.bonus.Int()))
}

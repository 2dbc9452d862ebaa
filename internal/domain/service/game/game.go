package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"lotto/internal/domain"
	"lotto/internal/domain/entity"
	"lotto/internal/domain/value"
	"lotto/pkg/contextx"
	"lotto/pkg/errcodes"
	"lotto/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Generator interface {
	Generate() []int
}

// Game один розыгрыш: купленные билеты, выигрышные числа и бонус.
// Не безопасен для одновременного изменения из нескольких горутин.
type Game struct {
	generator    Generator
	tickets      []entity.Lotto
	winningLotto *entity.Lotto
	winning      *entity.WinningLotto
}

func NewGame(generator Generator) *Game {
	return &Game{
		generator: generator,
	}
}

// Purchase генерирует amount.Count() билетов и добавляет их к купленным.
func (g *Game) Purchase(ctx context.Context, amount value.PurchaseAmount) ([]entity.Lotto, error) {
	tickets := make([]entity.Lotto, 0, amount.Count())

	for range amount.Count() {
		ticket, err := entity.NewLotto(g.generator.Generate())
		if err != nil {
			return nil, wrapValidation(err, "generated ticket rejected")
		}

		tickets = append(tickets, ticket)
	}

	g.tickets = append(g.tickets, tickets...)

	logger(ctx).Info("tickets purchased", slog.Int(logx.FieldCount, len(tickets)))

	return tickets, nil
}

func (g *Game) Tickets() []entity.Lotto {
	return append([]entity.Lotto(nil), g.tickets...)
}

// DetermineWinningLotto задаёт выигрышные числа. Ранее принятый бонус сбрасывается.
func (g *Game) DetermineWinningLotto(ctx context.Context, numbers []int) error {
	winning, err := entity.NewLotto(numbers)
	if err != nil {
		return wrapValidation(err, "winning numbers rejected")
	}

	g.winningLotto = &winning
	g.winning = nil

	logger(ctx).Info("winning numbers determined", logx.Stringer(logx.FieldWinning, winning))

	return nil
}

// DetermineBonusNumber принимает бонус, только если его нет среди выигрышных чисел.
func (g *Game) DetermineBonusNumber(ctx context.Context, bonus int) error {
	if g.winningLotto == nil {
		return domain.NewError(errcodes.WinningLottoNotDetermined, "winning numbers are not determined")
	}

	winning, err := entity.NewWinningLotto(*g.winningLotto, bonus)
	if err != nil {
		return wrapValidation(err, "bonus number rejected")
	}

	g.winning = &winning

	logger(ctx).Info("bonus number determined", slog.Int(logx.FieldBonusNumber, bonus))

	return nil
}

// Result сводит купленные билеты по местам. В результате есть все места, включая нулевые.
func (g *Game) Result(ctx context.Context) (Result, error) {
	if g.winningLotto == nil {
		return Result{}, domain.NewError(errcodes.WinningLottoNotDetermined, "winning numbers are not determined")
	}

	if g.winning == nil {
		return Result{}, domain.NewError(errcodes.BonusNumberNotDetermined, "bonus number is not determined")
	}

	counts := lo.CountValuesBy(g.tickets, g.winning.Match)

	result := Result{counts: make(map[entity.Rank]int, len(entity.Ranks()))}
	for _, rank := range entity.Ranks() {
		result.counts[rank] = counts[rank]
	}

	logger(ctx).Info("result tabulated", slog.Int(logx.FieldCount, len(g.tickets)))

	return result, nil
}

// Result количество билетов по каждому месту.
type Result struct {
	counts map[entity.Rank]int
}

func (r Result) Count(rank entity.Rank) int {
	return r.counts[rank]
}

func (r Result) Total() int {
	return lo.Sum(lo.Values(r.counts))
}

func wrapValidation(err error, message string) error {
	return domain.WrapError(err, validationCode(err), message)
}

func validationCode(err error) failure.ErrorCode {
	var (
		countErr  *entity.InvalidCountError
		dupErr    *entity.DuplicateNumberError
		rangeErr  *value.OutOfRangeError
		bonusErr  *entity.BonusNumberDuplicatedError
		amountErr *value.InvalidPurchaseAmountError
	)

	switch {
	case errors.As(err, &countErr):
		return errcodes.InvalidLottoCount
	case errors.As(err, &dupErr):
		return errcodes.DuplicateLottoNumber
	case errors.As(err, &rangeErr):
		return errcodes.LottoNumberOutOfRange
	case errors.As(err, &bonusErr):
		return errcodes.BonusNumberDuplicated
	case errors.As(err, &amountErr):
		return errcodes.InvalidPurchaseAmount
	default:
		return errcodes.ValidationError
	}
}

// ParsePurchaseAmount разбирает сумму покупки и кодирует ошибку так же, как остальные ошибки розыгрыша.
func ParsePurchaseAmount(amount int) (value.PurchaseAmount, error) {
	parsed, err := value.ParsePurchaseAmount(amount)
	if err != nil {
		return 0, wrapValidation(err, fmt.Sprintf("purchase amount %d rejected", amount))
	}

	return parsed, nil
}

package entity

import (
	"fmt"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"lotto/internal/domain/value"
	"lotto/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// TicketSize количество чисел в одном билете.
const TicketSize = 6

// InvalidCountError в билете не TicketSize чисел.
type InvalidCountError struct {
	Count int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("lotto must contain exactly %d numbers, got %d", TicketSize, e.Count)
}

// DuplicateNumberError в билете есть повторяющиеся числа.
type DuplicateNumberError struct {
	Numbers []int
}

func (e *DuplicateNumberError) Error() string {
	return fmt.Sprintf("lotto numbers must not be duplicated: %v", e.Numbers)
}

// Lotto один билет: ровно шесть различных чисел. После создания не меняется.
type Lotto struct {
	numbers []value.LottoNumber
}

// NewLotto проверяет количество, затем повторы, затем диапазон каждого числа.
// Для любого невалидного ввода возвращается ровно одна ошибка в этом порядке.
func NewLotto(numbers []int) (Lotto, error) {
	if len(numbers) != TicketSize {
		return Lotto{}, &InvalidCountError{Count: len(numbers)}
	}

	if len(lo.Uniq(numbers)) != TicketSize {
		return Lotto{}, &DuplicateNumberError{Numbers: slices.Clone(numbers)}
	}

	lottoNumbers, err := lox.MapErr(numbers, value.ParseLottoNumber)
	if err != nil {
		return Lotto{}, err
	}

	return Lotto{numbers: lottoNumbers}, nil
}

// Numbers возвращает новую копию чисел билета при каждом вызове.
func (l Lotto) Numbers() []value.LottoNumber {
	return slices.Clone(l.numbers)
}

// Ints числа билета как новый []int.
func (l Lotto) Ints() []int {
	return lox.Map(l.numbers, value.LottoNumber.Int)
}

// Contains сообщает, есть ли число в билете.
func (l Lotto) Contains(candidate int) bool {
	return lo.Contains(l.numbers, value.LottoNumber(candidate))
}

// MatchCount количество чисел, общих с другим билетом.
func (l Lotto) MatchCount(other Lotto) int {
	return lo.CountBy(l.numbers, func(number value.LottoNumber) bool {
		return other.Contains(number.Int())
	})
}

func (l Lotto) String() string {
	return "[" + strings.Join(lox.Map(l.numbers, value.LottoNumber.String), ", ") + "]"
}

func (l Lotto) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(l.Ints())
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return b, nil
}

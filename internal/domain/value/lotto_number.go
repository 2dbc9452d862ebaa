package value

import (
	"fmt"
	"strconv"
)

const (
	MinNumber = 1
	MaxNumber = 45
)

// LottoNumber одно число билета в диапазоне [MinNumber, MaxNumber].
type LottoNumber int

// OutOfRangeError число не попадает в диапазон лотереи.
type OutOfRangeError struct {
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("lotto number must be between %d and %d, got %d", MinNumber, MaxNumber, e.Value)
}

func ParseLottoNumber(number int) (LottoNumber, error) {
	if number < MinNumber || number > MaxNumber {
		return 0, &OutOfRangeError{Value: number}
	}

	return LottoNumber(number), nil
}

func (n LottoNumber) Int() int {
	return int(n)
}

func (n LottoNumber) String() string {
	return strconv.Itoa(int(n))
}

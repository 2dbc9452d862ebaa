package value

import "fmt"

const (
	// TicketPrice цена одного билета.
	TicketPrice = 1000
	// MaxPurchaseAmount предел одной покупки.
	MaxPurchaseAmount = 100_000
)

type PurchaseAmount int

type InvalidPurchaseAmountError struct {
	Amount int
}

func (e *InvalidPurchaseAmountError) Error() string {
	return fmt.Sprintf("purchase amount must be a multiple of %d between %d and %d, got %d",
		TicketPrice, TicketPrice, MaxPurchaseAmount, e.Amount)
}

func ParsePurchaseAmount(amount int) (PurchaseAmount, error) {
	if amount < TicketPrice || amount > MaxPurchaseAmount || amount%TicketPrice != 0 {
		return 0, &InvalidPurchaseAmountError{Amount: amount}
	}

	return PurchaseAmount(amount), nil
}

// Count количество билетов, которое можно купить на эту сумму.
func (a PurchaseAmount) Count() int {
	return int(a) / TicketPrice
}

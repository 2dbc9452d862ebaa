package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	ValidationError failure.ErrorCode = "ValidationError"

	// Билет
	InvalidLottoCount     failure.ErrorCode = "InvalidLottoCount"     // В билете не 6 чисел
	DuplicateLottoNumber  failure.ErrorCode = "DuplicateLottoNumber"  // Числа в билете повторяются
	LottoNumberOutOfRange failure.ErrorCode = "LottoNumberOutOfRange" // Число вне диапазона 1..45

	// Розыгрыш
	BonusNumberDuplicated     failure.ErrorCode = "BonusNumberDuplicated"     // Бонус уже среди выигрышных
	WinningLottoNotDetermined failure.ErrorCode = "WinningLottoNotDetermined" // Выигрышные числа ещё не заданы
	BonusNumberNotDetermined  failure.ErrorCode = "BonusNumberNotDetermined"  // Бонус ещё не задан

	// Покупка
	InvalidPurchaseAmount failure.ErrorCode = "InvalidPurchaseAmount"
)

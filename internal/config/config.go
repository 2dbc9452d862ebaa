package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	App  App
	Game Game
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"lotto" validate:"required"`
	Version string `env:"APP_VERSION" envDefault:"dev" validate:"required"`
}

// Game параметры одного розыгрыша. Правила билета проверяет домен,
// здесь только наличие и форма значений.
type Game struct {
	PurchaseAmount int    `env:"LOTTO_PURCHASE_AMOUNT,required,notEmpty" validate:"gt=0"`
	WinningNumbers []int  `env:"LOTTO_WINNING_NUMBERS,required,notEmpty" envSeparator:"," validate:"required"`
	BonusNumber    int    `env:"LOTTO_BONUS_NUMBER,required,notEmpty"`
	Seed           uint64 `env:"LOTTO_SEED"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}

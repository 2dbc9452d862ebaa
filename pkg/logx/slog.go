package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Error атрибут ошибки под ключом FieldError, tint выделяет его цветом.
func Error(err error) slog.Attr {
	attr := tint.Err(err)
	attr.Key = FieldError

	return attr
}

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewLogger консольный логгер с цветным выводом.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

package application

import (
	"context"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"lotto/internal/config"
	"lotto/internal/domain/entity"
	"lotto/internal/domain/service/game"
	"lotto/internal/domain/service/generator"
	"lotto/pkg/contextx"
	"lotto/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// rankReport строка итоговой таблицы в логе.
type rankReport struct {
	Rank    string `json:"rank"`
	Matches int    `json:"matches"`
	Count   int    `json:"count"`
}

// Run проводит один розыгрыш по конфигурации и пишет итоги в лог.
func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	return Play(ctx, log, cfg)
}

// Play проводит розыгрыш по уже загруженной конфигурации.
func Play(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	traceID := contextx.NewTraceID()

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		logx.Stringer(logx.FieldTraceID, traceID),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 2. Purchase
	amount, err := game.ParsePurchaseAmount(cfg.Game.PurchaseAmount)
	if err != nil {
		return fmt.Errorf("game.ParsePurchaseAmount: %w", err)
	}

	g := game.NewGame(generator.NewRandom(cfg.Game.Seed))

	tickets, err := g.Purchase(ctx, amount)
	if err != nil {
		return fmt.Errorf("game.Purchase: %w", err)
	}

	for _, ticket := range tickets {
		log.Debug("ticket", logx.Stringer(logx.FieldTicket, ticket))
	}

	ticketsJSON, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("json.Marshal(tickets): %w", err)
	}

	log.Info("purchased", slog.String(logx.FieldTickets, string(ticketsJSON)))

	// 3. Draw
	if err := g.DetermineWinningLotto(ctx, cfg.Game.WinningNumbers); err != nil {
		return fmt.Errorf("game.DetermineWinningLotto: %w", err)
	}

	if err := g.DetermineBonusNumber(ctx, cfg.Game.BonusNumber); err != nil {
		return fmt.Errorf("game.DetermineBonusNumber: %w", err)
	}

	// 4. Result
	result, err := g.Result(ctx)
	if err != nil {
		return fmt.Errorf("game.Result: %w", err)
	}

	report := make([]rankReport, 0, len(entity.Ranks()))

	for _, rank := range entity.Ranks() {
		report = append(report, rankReport{
			Rank:    rank.String(),
			Matches: rank.MatchCount(),
			Count:   result.Count(rank),
		})
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("json.Marshal(report): %w", err)
	}

	log.Info("result", slog.String(logx.FieldRanks, string(reportJSON)))

	return nil
}

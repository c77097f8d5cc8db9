package service

import (
	"context"
	"log/slog"

	"github.com/yourorg/shoplist/internal/models"
)

// Notifier receives the one-shot signal that every product has been bought.
type Notifier interface {
	AllBought(ctx context.Context, last *models.Product)
}

type NopNotifier struct{}

func (NopNotifier) AllBought(context.Context, *models.Product) {}

// LogNotifier writes the notification to the default slog logger.
type LogNotifier struct{}

func (LogNotifier) AllBought(ctx context.Context, last *models.Product) {
	slog.InfoContext(ctx, "all products bought", "last_product_id", last.ID, "last_product_name", last.Name)
}

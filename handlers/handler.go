package handlers

import (
	"context"
	"errors"
	"log/slog"

	"smartshop-bot/services"
)

// Catalog looks a product up by the post it was advertised in.
type Catalog interface {
	Lookup(ctx context.Context, postID string) (services.CatalogRow, error)
}

// ReplySender delivers replies to the end user.
type ReplySender interface {
	SendMessengerReply(ctx context.Context, recipientID, message string) error
	SendPrivateReply(ctx context.Context, commentID, message string) error
}

// Handler processes webhook events. All collaborators are injected at
// construction; the handler itself is stateless and safe for concurrent use.
type Handler struct {
	classifier *services.Classifier
	catalog    Catalog
	sender     ReplySender
}

func New(classifier *services.Classifier, catalog Catalog, sender ReplySender) *Handler {
	return &Handler{
		classifier: classifier,
		catalog:    catalog,
		sender:     sender,
	}
}

// lookupReply resolves the reply text for a price question about postID.
// Catalog failures collapse into the same apology as a missing row so
// internal errors never reach the user; the distinction is kept in the log.
func (h *Handler) lookupReply(ctx context.Context, postID string) string {
	row, err := h.catalog.Lookup(ctx, postID)
	if err != nil {
		logCatalogMiss(postID, err)
	}
	return services.ComposeReply(row, err)
}

func logCatalogMiss(postID string, err error) {
	if errors.Is(err, services.ErrUnavailable) {
		slog.Error("Catalog unavailable, replying with fallback", "postID", postID, "error", err)
		return
	}
	slog.Info("No catalog entry for post", "postID", postID)
}

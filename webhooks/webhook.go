package webhooks

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartshop-bot/config"
	"smartshop-bot/handlers"
	"smartshop-bot/middleware"
)

const eventTimeout = 30 * time.Second

func RegisterRoutes(app *fiber.App, cfg *config.Config, h *handlers.Handler) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler, behind signature verification
	webhook.Post("/", middleware.VerifySignature(cfg.AppSecret, cfg.SignatureMode), handleWebhookEvent(h))
}

// verifyWebhook handles Facebook webhook verification
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode)
		return c.Status(fiber.StatusForbidden).SendString("Invalid verify token")
	}
}

// handleWebhookEvent processes incoming webhook events. Events are processed
// before the acknowledgment is written; the acknowledgment itself is
// unconditional so Facebook never redelivers a batch because one event failed.
func handleWebhookEvent(h *handlers.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only process page events
		if body.Object != "page" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		processWebhookEvent(h, body)

		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent walks the delivery batch. A failure in one event is
// logged and never aborts its siblings.
func processWebhookEvent(h *handlers.Handler, body WebhookEvent) {
	for _, entry := range body.Entry {
		pageID := entry.ID

		for _, messaging := range entry.Messaging {
			if messaging.Message == nil {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
			err := h.HandleMessage(ctx, handlers.Messaging{
				Sender:    handlers.User{ID: messaging.Sender.ID},
				Recipient: handlers.User{ID: messaging.Recipient.ID},
				Timestamp: messaging.Timestamp,
				PostID:    messaging.PostID,
				Message: &handlers.Message{
					MID:  messaging.Message.MID,
					Text: messaging.Message.Text,
				},
			}, pageID)
			cancel()
			if err != nil {
				slog.Error("Failed to process message event", "error", err, "pageID", pageID)
			}
		}

		for _, change := range entry.Changes {
			// Only newly added comments; edits, deletes and likes are ignored
			if change.Field != "feed" || change.Value.Item != "comment" || change.Value.Verb != "add" {
				continue
			}

			handlerChange := handlers.ChangeValue{
				Item:        change.Value.Item,
				Verb:        change.Value.Verb,
				CommentID:   change.Value.CommentID,
				PostID:      change.Value.PostID,
				ParentID:    change.Value.ParentID,
				SenderID:    change.Value.SenderID,
				SenderName:  change.Value.SenderName,
				Message:     change.Value.Message,
				CreatedTime: change.Value.CreatedTime,
			}
			if change.Value.From != nil {
				handlerChange.From = &handlers.FacebookUser{
					ID:   change.Value.From.ID,
					Name: change.Value.From.Name,
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
			err := h.HandleComment(ctx, handlerChange, pageID)
			cancel()
			if err != nil {
				slog.Error("Failed to process comment event", "error", err, "pageID", pageID)
			}
		}
	}
}

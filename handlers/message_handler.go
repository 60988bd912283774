package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"smartshop-bot/services"
)

// Messaging represents a Messenger event (kept here rather than in webhooks
// to avoid an import cycle).
type Messaging struct {
	Sender    User     `json:"sender"`
	Recipient User     `json:"recipient"`
	Timestamp int64    `json:"timestamp"`
	PostID    string   `json:"post_id,omitempty"`
	Message   *Message `json:"message,omitempty"`
}

// User represents a Facebook user.
type User struct {
	ID string `json:"id"`
}

// Message represents a message.
type Message struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

// HandleMessage processes an incoming Messenger message. A price question is
// answered from the catalog; anything else gets a generic acknowledgment so
// the customer knows a manager will follow up. Events without a sender or
// message text are skipped.
func (h *Handler) HandleMessage(ctx context.Context, messaging Messaging, pageID string) error {
	if messaging.Message == nil {
		return nil
	}

	senderID := messaging.Sender.ID
	messageText := messaging.Message.Text
	if senderID == "" || messageText == "" {
		return nil
	}

	slog.Info("Handling message",
		"senderID", senderID,
		"pageID", pageID,
		"message", messageText,
	)

	var reply string
	if h.classifier.IsPriceQuestion(messageText) {
		reply = h.lookupReply(ctx, messaging.PostID)
	} else {
		reply = services.ThanksReply
	}

	if err := h.sender.SendMessengerReply(ctx, senderID, reply); err != nil {
		return fmt.Errorf("message %s: %w", messaging.Message.MID, err)
	}
	return nil
}

package handlers

import (
	"context"
	"fmt"
	"log/slog"
)

// ChangeValue represents the value of a page-feed change (kept here rather
// than in webhooks to avoid an import cycle).
type ChangeValue struct {
	Item        string        `json:"item"`
	Verb        string        `json:"verb"`
	CommentID   string        `json:"comment_id"`
	PostID      string        `json:"post_id"`
	ParentID    string        `json:"parent_id"`
	SenderID    string        `json:"sender_id"`
	SenderName  string        `json:"sender_name"`
	From        *FacebookUser `json:"from,omitempty"`
	Message     string        `json:"message"`
	CreatedTime int64         `json:"created_time"`
}

// FacebookUser represents a Facebook user in webhook payloads.
type FacebookUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandleComment processes a newly added comment on a page post. Only explicit
// price questions are answered, with a private reply to the commenter; other
// comments are left alone. Comments from the page itself are skipped so the
// bot never answers its own replies.
func (h *Handler) HandleComment(ctx context.Context, change ChangeValue, pageID string) error {
	commentID := change.CommentID
	postID := change.PostID
	message := change.Message

	senderID := change.SenderID
	if change.From != nil && change.From.ID != "" {
		senderID = change.From.ID
	}

	if commentID == "" || message == "" {
		return nil
	}

	if senderID == pageID {
		slog.Info("Skipping page's own comment", "commentID", commentID, "pageID", pageID)
		return nil
	}

	if !h.classifier.IsPriceQuestion(message) {
		return nil
	}

	slog.Info("Handling price question comment",
		"commentID", commentID,
		"postID", postID,
		"senderID", senderID,
		"pageID", pageID,
		"message", message,
	)

	reply := h.lookupReply(ctx, postID)

	if err := h.sender.SendPrivateReply(ctx, commentID, reply); err != nil {
		return fmt.Errorf("comment %s: %w", commentID, err)
	}
	return nil
}

package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartshop-bot/config"
)

const signatureHeader = "X-Hub-Signature-256"

// VerifySignature checks the X-Hub-Signature-256 header against an HMAC-SHA256
// of the raw request body keyed with the app secret. A present-but-invalid
// signature is always rejected. A missing header is rejected in strict mode
// and allowed through in permissive mode.
func VerifySignature(appSecret string, mode config.SignatureMode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(signatureHeader)
		if header == "" {
			if mode == config.SignaturePermissive {
				slog.Warn("Accepting request without signature header", "path", c.Path())
				return c.Next()
			}
			slog.Warn("Rejecting request without signature header", "path", c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "missing signature",
			})
		}

		provided, ok := strings.CutPrefix(header, "sha256=")
		if !ok || !validSignature(c.Body(), appSecret, provided) {
			slog.Warn("Rejecting request with invalid signature", "path", c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "invalid signature",
			})
		}

		return c.Next()
	}
}

func validSignature(body []byte, appSecret, providedHex string) bool {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(providedHex))
}

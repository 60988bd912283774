package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeReply(t *testing.T) {
	t.Run("found row produces a priced sentence", func(t *testing.T) {
		row := CatalogRow{PostID: "42", ProductName: "Chair", Price: "120"}
		assert.Equal(t, "პროდუქტი Chair ღირს 120 ლარი.", ComposeReply(row, nil))
	})

	t.Run("not found and unavailable produce the identical apology", func(t *testing.T) {
		notFound := ComposeReply(CatalogRow{}, ErrNotFound)
		unavailable := ComposeReply(CatalogRow{}, fmt.Errorf("%w: connection refused", ErrUnavailable))

		assert.Equal(t, ApologyReply, notFound)
		assert.Equal(t, notFound, unavailable)
	})
}

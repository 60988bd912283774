package services

import "fmt"

// ApologyReply is sent when the catalog has no usable row for the post or
// cannot be read at all. The two cases are deliberately indistinguishable to
// the end user.
const ApologyReply = "ფასი уточняется, ჩვენი მენეჯერი მალე მოგწერთ."

// ThanksReply acknowledges a Messenger message that is not a price question.
const ThanksReply = "მადლობა შეტყობინებისთვის! ჩვენი მენეჯერი მალე მოგწერთ."

// ComposeReply formats the user-facing answer for a catalog lookup result.
func ComposeReply(row CatalogRow, err error) string {
	if err != nil {
		return ApologyReply
	}
	return fmt.Sprintf("პროდუქტი %s ღირს %s ლარი.", row.ProductName, row.Price)
}

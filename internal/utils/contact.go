package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// ContactLinks are the click-to-call/text/mail actions shown on a listing.
type ContactLinks struct {
	Call    string `json:"call"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

// InterestMessage is the prefilled text a buyer sends to an owner.
func InterestMessage(l model.Listing) string {
	return fmt.Sprintf("Hi, I'm interested in your land plot: %s in %s. Could you please provide more details?", l.Title, l.Location)
}

// ListingContactLinks builds tel:, sms: and mailto: links for the owner
// of l.
func ListingContactLinks(l model.Listing) ContactLinks {
	phone := strings.ReplaceAll(l.OwnerPhone, " ", "")
	return ContactLinks{
		Call:    "tel:" + phone,
		Message: "sms:" + phone + "?body=" + encodeComponent(InterestMessage(l)),
		Email:   "mailto:" + l.OwnerEmail + "?subject=" + encodeComponent("Inquiry about "+l.Title),
	}
}

// encodeComponent escapes s for use inside a URI query value, with spaces
// as %20 rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

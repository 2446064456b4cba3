// Package queue defines message payloads exchanged over the message broker
// and the background consumer that logs them.
package queue

// Queue names.  Both queues are durable and use the default exchange.
const (
	VisitRequestedQueue   = "visit.requested"
	ContactSubmittedQueue = "contact.submitted"
)

// VisitRequestedEvent is published when a buyer asks to visit a plot.  It
// carries the listing and owner snapshot so consumers can notify the owner
// without reading the listings store.
type VisitRequestedEvent struct {
	ListingID     string `json:"listing_id"`
	ListingTitle  string `json:"listing_title"`
	Location      string `json:"location"`
	OwnerID       string `json:"owner_id"`
	OwnerName     string `json:"owner_name"`
	OwnerPhone    string `json:"owner_phone"`
	OwnerEmail    string `json:"owner_email"`
	VisitorName   string `json:"visitor_name"`
	VisitorPhone  string `json:"visitor_phone"`
	VisitorEmail  string `json:"visitor_email"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message,omitempty"`
	RequestedAt   string `json:"requested_at"`
}

// ContactSubmittedEvent is published for every contact form submission.
type ContactSubmittedEvent struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

package model

// VisitRequest is what a prospective buyer submits from a listing page to
// ask the owner for a site visit.  It is only forwarded, never stored.
type VisitRequest struct {
	VisitorName   string `json:"visitorName" validate:"required"`
	VisitorPhone  string `json:"visitorPhone" validate:"required"`
	VisitorEmail  string `json:"visitorEmail" validate:"required,email"`
	PreferredDate string `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	Message       string `json:"message"`
}

// ContactSubjects lists the subjects accepted by the contact form.
var ContactSubjects = []string{
	"general-inquiry",
	"listing-help",
	"buying-support",
	"technical-issue",
	"partnership",
	"other",
}

// ContactMessage is a general enquiry sent to the marketplace team.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required,oneof=general-inquiry listing-help buying-support technical-issue partnership other"`
	Message string `json:"message" validate:"required"`
}

package models

// CommitteeMember is a directory entry for the mosque committee page.
// It carries no financial data.
type CommitteeMember struct {
	ID       string
	Name     string
	Position string

	// Phone is optional.
	Phone string

	// PhotoURL references an uploaded photo, empty when none.
	PhotoURL string
}

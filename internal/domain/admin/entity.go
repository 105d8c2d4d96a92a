package admin

// Admin is the record returned by a successful credential lookup. Only
// the email travels back; the password never leaves the filter predicate.
type Admin struct {
	Email string `json:"email"`
}

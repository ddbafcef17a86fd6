package model

// Identity holds the claims decoded from a verified session token.
type Identity map[string]any

// Email returns the email claim, or "" if it is absent or not a string.
func (i Identity) Email() string {
	email, _ := i["email"].(string)
	return email
}

package user

import "strings"

// Role is the access level of a POS user.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// User represents a user in the system. Users are fixture data; PasswordHash
// is a bcrypt hash and never serialized.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

// StoreContext is the business mode inferred from the logged-in user's email
// domain. It themes the UI and filters catalog visibility.
type StoreContext string

const (
	StorePrinting StoreContext = "printing"
	StoreRetail   StoreContext = "retail"
	StoreGeneral  StoreContext = "general"
)

// StoreContextFor derives the store context from the domain part of an email
// address: the print shop logs in under arjuna.digital, the uniform shop
// under arjuna.seragam, anything else runs in general mode.
func StoreContextFor(email string) StoreContext {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return StoreGeneral
	}
	switch strings.ToLower(email[at+1:]) {
	case "arjuna.digital":
		return StorePrinting
	case "arjuna.seragam":
		return StoreRetail
	default:
		return StoreGeneral
	}
}

// StoreContext is shorthand for StoreContextFor on the user's own email.
func (u User) StoreContext() StoreContext {
	return StoreContextFor(u.Email)
}

package models

// User represents a registered account. Email is the unique lookup key;
// accounts are never deleted.
type User struct {
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"passwordHash"`
	Address        string          `json:"address,omitempty"`
	ProfilePhoto   string          `json:"profilePhoto,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty"`
}

package models

// Payment method type strings as stored on the user record.
const (
	PaymentTypeCard = "Card"
	PaymentTypeCash = "Cash on Delivery"
)

// CardDetails holds the fields of a saved card. All four are required.
type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// PaymentMethod is either a saved card or cash on delivery. Details is set
// only when Type is PaymentTypeCard.
type PaymentMethod struct {
	Type    string       `json:"type"`
	Details *CardDetails `json:"details,omitempty"`
}

package model

// CreditCard links a named card to an account. A card has no balance of its
// own; outstanding spend is derived by scanning transactions whose payment
// method matches the card convention.
type CreditCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	AccountID string `json:"accountId"`
}

package models

// OrderLeg is one leg of the broker's multi_leg_order document. The broker
// expects every numeric field as a string; the mixed camel/snake key casing
// is part of the wire contract.
type OrderLeg struct {
	TransactionType string `json:"transactionType"`
	OrderType       string `json:"orderType"`
	Quantity        string `json:"quantity"`
	Exchange        string `json:"exchange"`
	Symbol          string `json:"symbol"`
	Instrument      string `json:"instrument"`
	ProductType     string `json:"productType"`
	SortOrder       string `json:"sort_order"`
	Price           string `json:"price"`
	OptionType      string `json:"option_type"`
	StrikePrice     string `json:"strike_price"`
	ExpiryDate      string `json:"expiry_date"`
}

// RiskParams is the bracket block attached to the order (points and trail
// are plain numbers, unlike the leg fields).
type RiskParams struct {
	Points int `json:"points"`
	Trail  int `json:"trail"`
}

// OrderDocument is the full multi_leg_order request body.
type OrderDocument struct {
	Secret    string     `json:"secret"`
	AlertType string     `json:"alertType"`
	OrderLegs []OrderLeg `json:"order_legs"`
	Target    RiskParams `json:"target"`
	Stoploss  RiskParams `json:"stoploss"`
}

package models

// Signal is the direction of an inbound alert. BUY maps to a call leg,
// SELL to a put leg.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
)

// Alert is the payload a charting platform posts to the webhook. It lives
// for one request only.
type Alert struct {
	Secret   string `json:"secret"`
	Signal   Signal `json:"signal"`
	Symbol   string `json:"symbol"`
	Quantity int    `json:"quantity"`
}

// ApplyDefaults fills the optional fields the way the webhook contract
// documents them: symbol NIFTY, quantity 1.
func (a *Alert) ApplyDefaults() {
	if a.Symbol == "" {
		a.Symbol = "NIFTY"
	}
	if a.Quantity <= 0 {
		a.Quantity = 1
	}
}

// OptionType returns the contract side for the alert's signal (CE for BUY,
// PE for SELL). Valid only after signal validation.
func (a *Alert) OptionType() string {
	if a.Signal == SignalBuy {
		return "CE"
	}
	return "PE"
}

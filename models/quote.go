package models

// QuoteRequest is the POST-mode quote call body.
type QuoteRequest struct {
	ExchangeSegment string `json:"exchangeSegment"`
	Instrument      string `json:"instrument"`
}

// QuoteResponse covers both quote call shapes: the POST quotes endpoint
// returns lastPrice, the GET ltp endpoint returns ltp.
type QuoteResponse struct {
	LastPrice float64 `json:"lastPrice"`
	Ltp       float64 `json:"ltp"`
}

// Price returns whichever field the endpoint populated.
func (q QuoteResponse) Price() float64 {
	if q.LastPrice != 0 {
		return q.LastPrice
	}
	return q.Ltp
}

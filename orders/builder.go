package orders

import (
	"strconv"
	"strings"

	"dhanbridge/models"
)

// Broker contract constants for the single-leg intraday market order this
// service places. Exchange is "NSE" per the broker's multi-leg webhook
// examples.
const (
	exchange        = "NSE"
	transactionType = "B"
	orderType       = "MKT"
	productType     = "I"
	instrument      = "OPT"
)

// Fixed bracket parameters, in index points. Not derived from the alert.
var (
	target   = models.RiskParams{Points: 45, Trail: 5}
	stoploss = models.RiskParams{Points: 15, Trail: 5}
)

// Build assembles the multi_leg_order document for a validated alert:
// exactly one leg, option side from the signal, ATM strike and weekly
// expiry as resolved by the caller.
func Build(alert models.Alert, secret string, strike int, expiry string) models.OrderDocument {
	leg := models.OrderLeg{
		TransactionType: transactionType,
		OrderType:       orderType,
		Quantity:        strconv.Itoa(alert.Quantity),
		Exchange:        exchange,
		Symbol:          strings.ToUpper(alert.Symbol),
		Instrument:      instrument,
		ProductType:     productType,
		SortOrder:       "1",
		Price:           "0",
		OptionType:      alert.OptionType(),
		StrikePrice:     strconv.Itoa(strike),
		ExpiryDate:      expiry,
	}
	return models.OrderDocument{
		Secret:    secret,
		AlertType: "multi_leg_order",
		OrderLegs: []models.OrderLeg{leg},
		Target:    target,
		Stoploss:  stoploss,
	}
}

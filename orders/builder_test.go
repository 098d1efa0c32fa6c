package orders

import (
	"encoding/json"
	"testing"

	"dhanbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_BuySignal(t *testing.T) {
	alert := models.Alert{Signal: models.SignalBuy, Symbol: "nifty", Quantity: 2}
	doc := Build(alert, "SECRET", 17500, "2025-01-02")

	require.Len(t, doc.OrderLegs, 1)
	leg := doc.OrderLegs[0]
	assert.Equal(t, "CE", leg.OptionType)
	assert.Equal(t, "B", leg.TransactionType)
	assert.Equal(t, "MKT", leg.OrderType)
	assert.Equal(t, "I", leg.ProductType)
	assert.Equal(t, "OPT", leg.Instrument)
	assert.Equal(t, "NSE", leg.Exchange)
	assert.Equal(t, "NIFTY", leg.Symbol)
	assert.Equal(t, "2", leg.Quantity)
	assert.Equal(t, "17500", leg.StrikePrice)
	assert.Equal(t, "0", leg.Price)
	assert.Equal(t, "1", leg.SortOrder)
	assert.Equal(t, "2025-01-02", leg.ExpiryDate)

	assert.Equal(t, "SECRET", doc.Secret)
	assert.Equal(t, "multi_leg_order", doc.AlertType)
	assert.Equal(t, models.RiskParams{Points: 45, Trail: 5}, doc.Target)
	assert.Equal(t, models.RiskParams{Points: 15, Trail: 5}, doc.Stoploss)
}

func TestBuild_SellSignal(t *testing.T) {
	alert := models.Alert{Signal: models.SignalSell, Symbol: "BANKNIFTY", Quantity: 1}
	doc := Build(alert, "SECRET", 17450, "2025-01-02")
	assert.Equal(t, "PE", doc.OrderLegs[0].OptionType)
	assert.Equal(t, "17450", doc.OrderLegs[0].StrikePrice)
}

// The broker decodes string-typed numerics from specific mixed-case keys;
// a renamed field would silently break order placement.
func TestBuild_WireFormat(t *testing.T) {
	alert := models.Alert{Signal: models.SignalBuy, Symbol: "NIFTY", Quantity: 3}
	raw, err := json.Marshal(Build(alert, "S", 17500, "2025-01-02"))
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Contains(t, got, "order_legs")
	assert.Contains(t, got, "alertType")
	assert.Contains(t, got, "target")
	assert.Contains(t, got, "stoploss")

	var legs []map[string]any
	require.NoError(t, json.Unmarshal(got["order_legs"], &legs))
	require.Len(t, legs, 1)
	for _, key := range []string{
		"transactionType", "orderType", "quantity", "exchange", "symbol",
		"instrument", "productType", "sort_order", "price", "option_type",
		"strike_price", "expiry_date",
	} {
		assert.Contains(t, legs[0], key)
	}
	assert.Equal(t, "3", legs[0]["quantity"])
	assert.Equal(t, "17500", legs[0]["strike_price"])
}

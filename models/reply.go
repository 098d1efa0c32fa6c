package models

import "encoding/json"

// BrokerReply is what came back from the order endpoint: either the body as
// the broker's own JSON, or the raw text when the broker answered with
// something unparseable (an HTML error page, typically). Callers branch on
// Parsed instead of probing a map for a "raw" key.
type BrokerReply struct {
	Parsed json.RawMessage
	Raw    string
}

// ParseBrokerReply keeps the body verbatim when it is a JSON value and
// falls back to the raw-text variant otherwise.
func ParseBrokerReply(body []byte) BrokerReply {
	if len(body) > 0 && json.Valid(body) {
		return BrokerReply{Parsed: json.RawMessage(body)}
	}
	return BrokerReply{Raw: string(body)}
}

// MarshalJSON relays the broker's JSON untouched, or wraps raw text as
// {"raw": <text>}.
func (r BrokerReply) MarshalJSON() ([]byte, error) {
	if r.Parsed != nil {
		return r.Parsed, nil
	}
	return json.Marshal(map[string]string{"raw": r.Raw})
}

package domain

import (
	"bytes"
	"encoding/json"
)

// Values decoded from an API response keep the exact JSON they came from and
// marshal back to it, so tool output carries every field the service sent,
// including ones the typed view does not model. Values built in code have no
// payload and marshal from their fields.

func unmarshalKeepingPayload[T any](data []byte, into *T, payload *json.RawMessage) error {
	if err := json.Unmarshal(data, into); err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*payload = nil
		return nil
	}
	*payload = append(json.RawMessage(nil), trimmed...)
	return nil
}

func marshalPayloadOr[T any](payload json.RawMessage, fallback T) ([]byte, error) {
	if len(payload) > 0 {
		return payload, nil
	}
	return json.Marshal(fallback)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	return unmarshalKeepingPayload(data, (*plain)(a), &a.payload)
}

func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return marshalPayloadOr(a.payload, plain(a))
}

func (p *AccountPortfolio) UnmarshalJSON(data []byte) error {
	type plain AccountPortfolio
	return unmarshalKeepingPayload(data, (*plain)(p), &p.payload)
}

func (p AccountPortfolio) MarshalJSON() ([]byte, error) {
	type plain AccountPortfolio
	return marshalPayloadOr(p.payload, plain(p))
}

func (p *Portfolio) UnmarshalJSON(data []byte) error {
	type plain Portfolio
	return unmarshalKeepingPayload(data, (*plain)(p), &p.payload)
}

func (p Portfolio) MarshalJSON() ([]byte, error) {
	type plain Portfolio
	return marshalPayloadOr(p.payload, plain(p))
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	type plain Balance
	return unmarshalKeepingPayload(data, (*plain)(b), &b.payload)
}

func (b Balance) MarshalJSON() ([]byte, error) {
	type plain Balance
	return marshalPayloadOr(b.payload, plain(b))
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	return unmarshalKeepingPayload(data, (*plain)(o), &o.payload)
}

func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	return marshalPayloadOr(o.payload, plain(o))
}

func (q *QuoteData) UnmarshalJSON(data []byte) error {
	type plain QuoteData
	return unmarshalKeepingPayload(data, (*plain)(q), &q.payload)
}

func (q QuoteData) MarshalJSON() ([]byte, error) {
	type plain QuoteData
	return marshalPayloadOr(q.payload, plain(q))
}

func (d *ExpirationDate) UnmarshalJSON(data []byte) error {
	type plain ExpirationDate
	return unmarshalKeepingPayload(data, (*plain)(d), &d.payload)
}

func (d ExpirationDate) MarshalJSON() ([]byte, error) {
	type plain ExpirationDate
	return marshalPayloadOr(d.payload, plain(d))
}

func (c *OptionChain) UnmarshalJSON(data []byte) error {
	type plain OptionChain
	return unmarshalKeepingPayload(data, (*plain)(c), &c.payload)
}

func (c OptionChain) MarshalJSON() ([]byte, error) {
	type plain OptionChain
	return marshalPayloadOr(c.payload, plain(c))
}

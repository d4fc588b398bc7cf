package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultQuantity is stored when an insert omits the quantity.
// NOTE: 10.99 looks like a product price rather than a count. Kept because
// existing clients observe it.
var DefaultQuantity = decimal.RequireFromString("10.99")

type Product struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id    int         `json:"id"`
		Name  string      `json:"name"`
		Price json.Number `json:"price"`
	}{
		Id:    p.Id,
		Name:  p.Name,
		Price: number(p.Price),
	})
}

// CartItem is an arbitrary JSON value kept exactly as the client sent it.
type CartItem = json.RawMessage

// CartRow is a cart table row as returned to clients. The column aliases
// (product_id AS name, quantity AS price) are part of the HTTP contract.
type CartRow struct {
	Name  int64               `json:"name" db:"name"`
	Price decimal.NullDecimal `json:"price" db:"price"`
}

func (r CartRow) MarshalJSON() ([]byte, error) {
	var price *json.Number
	if r.Price.Valid {
		n := number(r.Price.Decimal)
		price = &n
	}

	return json.Marshal(struct {
		Name  int64        `json:"name"`
		Price *json.Number `json:"price"`
	}{
		Name:  r.Name,
		Price: price,
	})
}

// number renders d as a bare JSON number instead of the quoted string
// decimal.Decimal marshals to by default.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// NewCartRow is one insert into the cart table. An invalid Quantity is
// stored as NULL.
type NewCartRow struct {
	ProductId int64               `db:"product_id"`
	Quantity  decimal.NullDecimal `db:"quantity"`
}

// ErrInvalidProductID is returned when an id is present and truthy but
// cannot be read as an integer.
var ErrInvalidProductID = errors.New("product id is not an integer")

// ProductID accepts any JSON value for "id". Falsy values (null, 0, 0.0, "",
// false, [] and {}) decode to zero, which validation reports as missing.
// Integral numbers and strings holding an integer decode to their value.
type ProductID int64

func (id *ProductID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*id = 0
		return nil
	case bool:
		if !v {
			*id = 0
			return nil
		}
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidProductID, v)
		}
		if d.IsZero() {
			*id = 0
			return nil
		}
		if d.IsInteger() {
			n, err := strconv.ParseInt(d.String(), 10, 64)
			if err == nil {
				*id = ProductID(n)
				return nil
			}
		}
	case string:
		if v == "" {
			*id = 0
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil {
			*id = ProductID(n)
			return nil
		}
	case []any:
		if len(v) == 0 {
			*id = 0
			return nil
		}
	case map[string]any:
		if len(v) == 0 {
			*id = 0
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidProductID, data)
}

// Quantity tells an absent "quantity" apart from an explicit null.
// UnmarshalJSON only runs when the key is present.
type Quantity struct {
	Set   bool
	Value decimal.NullDecimal
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	q.Set = true
	return q.Value.UnmarshalJSON(data)
}

// AddCartRowRequest is the body of POST /cart on the database backed cart.
type AddCartRowRequest struct {
	Id       ProductID `json:"id" validate:"required"`
	Quantity Quantity  `json:"quantity"`
}

// ToRow applies DefaultQuantity when the quantity was left out. An explicit
// null is kept and stored as NULL.
func (r AddCartRowRequest) ToRow() NewCartRow {
	quantity := decimal.NewNullDecimal(DefaultQuantity)
	if r.Quantity.Set {
		quantity = r.Quantity.Value
	}

	return NewCartRow{
		ProductId: int64(r.Id),
		Quantity:  quantity,
	}
}

// ErrorBody is one element of a validation error response.
type ErrorBody struct {
	Error string `json:"error"`
}

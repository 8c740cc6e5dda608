package redis

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

// Field numbers of hipstershop.Cart and hipstershop.CartItem. Peer services
// read and write the same keys, so these are fixed.
const (
	cartUserIDField    protowire.Number = 1
	cartItemsField     protowire.Number = 2
	itemProductIDField protowire.Number = 1
	itemQuantityField  protowire.Number = 2
)

// encodeCart produces proto3 wire bytes: zero values are omitted and items
// keep their order.
func encodeCart(c domain.Cart) []byte {
	var b []byte
	if c.UserID != "" {
		b = protowire.AppendTag(b, cartUserIDField, protowire.BytesType)
		b = protowire.AppendString(b, c.UserID)
	}
	for _, it := range c.Items {
		b = protowire.AppendTag(b, cartItemsField, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeItem(it))
	}
	return b
}

func encodeItem(it domain.CartItem) []byte {
	var b []byte
	if it.ProductID != "" {
		b = protowire.AppendTag(b, itemProductIDField, protowire.BytesType)
		b = protowire.AppendString(b, it.ProductID)
	}
	if it.Quantity != 0 {
		b = protowire.AppendTag(b, itemQuantityField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(it.Quantity)))
	}
	return b
}

// decodeCart skips unknown fields. A known field carrying the wrong wire
// type is a schema mismatch and fails.
func decodeCart(b []byte) (domain.Cart, error) {
	cart := domain.Cart{Items: []domain.CartItem{}}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.Cart{}, fmt.Errorf("cart tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case cartUserIDField:
			v, n, err := consumeString(num, typ, b)
			if err != nil {
				return domain.Cart{}, fmt.Errorf("cart.user_id: %w", err)
			}
			cart.UserID = v
			b = b[n:]
		case cartItemsField:
			if typ != protowire.BytesType {
				return domain.Cart{}, wireTypeError(num, typ)
			}
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return domain.Cart{}, fmt.Errorf("cart.items: %w", protowire.ParseError(n))
			}
			item, err := decodeItem(v)
			if err != nil {
				return domain.Cart{}, fmt.Errorf("cart.items[%d]: %w", len(cart.Items), err)
			}
			cart.Items = append(cart.Items, item)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.Cart{}, fmt.Errorf("cart field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return cart, nil
}

func decodeItem(b []byte) (domain.CartItem, error) {
	var item domain.CartItem
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.CartItem{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case itemProductIDField:
			v, n, err := consumeString(num, typ, b)
			if err != nil {
				return domain.CartItem{}, fmt.Errorf("product_id: %w", err)
			}
			item.ProductID = v
			b = b[n:]
		case itemQuantityField:
			if typ != protowire.VarintType {
				return domain.CartItem{}, wireTypeError(num, typ)
			}
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return domain.CartItem{}, fmt.Errorf("quantity: %w", protowire.ParseError(n))
			}
			item.Quantity = int32(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.CartItem{}, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return item, nil
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	if !utf8.ValidString(v) {
		return "", 0, errInvalidUTF8
	}
	return v, n, nil
}

var errInvalidUTF8 = errors.New("string field contains invalid UTF-8")

func wireTypeError(num protowire.Number, typ protowire.Type) error {
	return fmt.Errorf("field %d: unexpected wire type %d", num, typ)
}

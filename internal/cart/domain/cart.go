package domain

type CartItem struct {
	ProductID string
	Quantity  int32
}

type Cart struct {
	UserID string
	Items  []CartItem
}

func NewCart(userID string) Cart {
	return Cart{UserID: userID, Items: []CartItem{}}
}

// Add merges quantity into the item for productID. No upper bound.
func (c *Cart) Add(productID string, quantity int32) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{UserID: c.UserID, Items: items}
}

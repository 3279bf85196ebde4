package models

// Order items are denormalized copies of menu item data at ordering time,
// not live references.
type Order struct {
	TableRef *string     `json:"tableRef"`
	Items    []OrderItem `json:"items"`
	Status   *string     `json:"status"`
}

type OrderItem struct {
	MenuItemID *string  `json:"menuItemId"`
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Quantity   *int     `json:"quantity"`
}

// OrderDelta is one element of a batch update: the target document id plus
// the fields to merge onto it.
type OrderDelta map[string]any

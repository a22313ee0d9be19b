package domain

// SaleEvent is one logical sale reconstructed from an adjacent 950/980 row
// pair. Date and amount come from the value row, the type label from the
// tender row. Amount is never missing: unparseable prices have already been
// coerced to 0. Nil Date/Type mean the dimension was absent for the store.
type SaleEvent struct {
	Date         *string
	Type         *string
	Amount       float64
	Count        int
	CategoryKey  *string
	CategoryName *string
}

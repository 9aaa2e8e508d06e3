package domain

// Product is a catalog row. The catalog owns these; the cart only ever
// copies fields out, it never holds a reference back into the catalog.
type Product struct {
	ID       int     `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Category string  `db:"category"`
	Image    string  `db:"image"`
}

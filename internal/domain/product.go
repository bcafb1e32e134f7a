package domain

type ProductID int

type Product struct {
	ID       ProductID
	Title    string
	Category string
	Price    Money
	Image    string
}

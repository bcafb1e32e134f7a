package domain

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const CategoryAll = "All"

var categories = []string{
	CategoryAll,
	"men's clothing",
	"women's clothing",
	"electronics",
	"jewelery",
}

// Categories returns the selectable categories, CategoryAll first.
func Categories() []string {
	return append([]string(nil), categories...)
}

// Filter returns the products of the given category in catalog order.
// CategoryAll returns products unchanged. Matching is exact after case folding.
func Filter(products []Product, category string) []Product {
	if category == CategoryAll {
		return products
	}

	fold := cases.Fold()
	want := fold.String(category)

	var result []Product
	for _, p := range products {
		if fold.String(p.Category) == want {
			result = append(result, p)
		}
	}
	return result
}

// Label upper-cases the first letter: "men's clothing" becomes "Men's clothing".
func Label(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

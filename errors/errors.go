package errors

import "fmt"

var (
	ErrNameRequired   = fmt.Errorf("name is required")
	ErrDishRequired   = fmt.Errorf("dish is required")
	ErrInvalidSection = fmt.Errorf("section must be one of appetizers, entree, dessert, beverages")
	ErrNotFound       = fmt.Errorf("item not found")
	ErrPersistence    = fmt.Errorf("could not persist items")
)

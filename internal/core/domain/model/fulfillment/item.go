package fulfillment

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Dimensions describes the physical size of an item or box in inches.
// The zero value is valid and represents a dimensionless item.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Validate ensures no dimension is negative.
func (d Dimensions) Validate() error {
	if d.Length < 0 || d.Width < 0 || d.Height < 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%.2fx%.2fx%.2f contains a negative side", d.Length, d.Width, d.Height))
	}
	return nil
}

// Volume returns the cubic volume of the dimensions.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Item is a single physical product line within a fulfillment request.
// Items are immutable inputs owned by the caller.
//
// Invariants:
//   - Quantity must be positive
//   - Dimensions, weight, and declared value must be non-negative
//   - Can only be created through NewItem
type Item struct { //nolint:recvcheck //using for validation
	productID  string
	quantity   int
	dimensions Dimensions
	weight     float64
	fragile    bool
	value      float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated Item.
//
// Parameters:
//   - productID: non-empty product identifier
//   - quantity: number of units (must be positive)
//   - dimensions: per-unit physical size (non-negative sides)
//   - weight: per-unit weight in pounds (non-negative)
//   - fragile: whether the item needs extra protection
//   - value: per-unit declared value in dollars (non-negative)
func NewItem(
	productID string,
	quantity int,
	dimensions Dimensions,
	weight float64,
	fragile bool,
	value float64,
) (Item, error) {
	item := Item{
		fragile: fragile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setDimensions(dimensions),
		item.setWeight(weight),
		item.setValue(value),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Dimensions returns the per-unit physical size.
func (i Item) Dimensions() Dimensions {
	return i.dimensions
}

// Weight returns the per-unit weight in pounds.
func (i Item) Weight() float64 {
	return i.weight
}

// Fragile reports whether the item requires extra protection.
func (i Item) Fragile() bool {
	return i.fragile
}

// Value returns the per-unit declared value in dollars.
func (i Item) Value() float64 {
	return i.value
}

// TotalVolume returns the cubic volume of all units of this item.
func (i Item) TotalVolume() float64 {
	return i.dimensions.Volume() * float64(i.quantity)
}

// TotalWeight returns the weight of all units of this item.
func (i Item) TotalWeight() float64 {
	return i.weight * float64(i.quantity)
}

// TotalValue returns the declared value of all units of this item.
func (i Item) TotalValue() float64 {
	return i.value * float64(i.quantity)
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	i.dimensions = dimensions
	return nil
}

func (i *Item) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%.2f is negative", weight))
	}
	i.weight = weight
	return nil
}

func (i *Item) setValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%.2f is negative", value))
	}
	i.value = value
	return nil
}

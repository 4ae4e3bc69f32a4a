package fulfillment

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// through the NewAddress factory method.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through the NewRequest factory method.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Address is the delivery destination for a fulfillment request.
// It is an immutable value object; the state field drives distance estimation.
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated destination address.
// Street, city, and state are required; an empty country defaults to "US".
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	if country == "" {
		country = "US"
	}

	address := Address{
		zipCode: zipCode,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setState(state),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was properly constructed through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// State returns the two-letter state or region code.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string { return a.zipCode }

// Country returns the destination country code.
func (a Address) Country() string { return a.country }

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

// Request captures everything needed to plan fulfillment for one order:
// the physical items, the destination, and the customer's preferences.
//
// Invariants:
//   - Must reference a valid order identifier
//   - Must contain at least one item, each properly constructed
//   - Destination and preferences must be valid
//   - Can only be created through NewRequest
type Request struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	items               []Item
	destination         Address
	preferences         Preferences
	specialRequirements []string

	guard guard.ConstructorGuard
}

// NewRequest creates a validated fulfillment Request.
// specialRequirements may be nil; entries are free-text handling notes.
func NewRequest(
	orderID kernel.UUID,
	items []Item,
	destination Address,
	preferences Preferences,
	specialRequirements []string,
) (*Request, error) {
	request := &Request{
		specialRequirements: append([]string(nil), specialRequirements...),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setOrderID(orderID),
		request.setItems(items),
		request.setDestination(destination),
		request.setPreferences(preferences),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate ensures the Request was properly constructed through NewRequest.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// OrderID returns the identifier of the order being fulfilled.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// Items returns a copy of the ordered item lines.
func (r *Request) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Destination returns the delivery address.
func (r *Request) Destination() Address {
	return r.destination
}

// Preferences returns the customer's delivery preferences.
func (r *Request) Preferences() Preferences {
	return r.preferences
}

// SpecialRequirements returns a copy of the free-text handling notes.
func (r *Request) SpecialRequirements() []string {
	return append([]string(nil), r.specialRequirements...)
}

// TotalVolume returns the summed cubic volume over all item lines.
func (r *Request) TotalVolume() float64 {
	var total float64
	for _, item := range r.items {
		total += item.TotalVolume()
	}
	return total
}

// TotalWeight returns the summed weight over all item lines in pounds.
func (r *Request) TotalWeight() float64 {
	var total float64
	for _, item := range r.items {
		total += item.TotalWeight()
	}
	return total
}

// TotalValue returns the summed declared value over all item lines in dollars.
func (r *Request) TotalValue() float64 {
	var total float64
	for _, item := range r.items {
		total += item.TotalValue()
	}
	return total
}

// HasFragileItems reports whether any item line is marked fragile.
func (r *Request) HasFragileItems() bool {
	for _, item := range r.items {
		if item.Fragile() {
			return true
		}
	}
	return false
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	r.items = append([]Item(nil), items...)
	return nil
}

func (r *Request) setDestination(destination Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Request) setPreferences(preferences Preferences) error {
	if err := preferences.Validate(); err != nil {
		return err
	}
	r.preferences = preferences
	return nil
}

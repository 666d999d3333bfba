package domain

import (
	"github.com/shopspring/decimal"
)

// MenuItem is a dish an organization offers, as supplied by the catalog owner.
type MenuItem struct {
	ID           string
	Name         string
	CategoryID   string
	BasePrice    *Money
	IsVegetarian bool
	IsAvailable  bool
	IsEssential  bool
}

// MenuItemVariant adjusts the base price of an item (portion size, premium option).
// The modifier may be negative.
type MenuItemVariant struct {
	ID            string
	Name          string
	PriceModifier *Money
}

// FinalPrice returns the unit price of item in the given variant, or the base price when
// variant is nil.
func FinalPrice(item MenuItem, variant *MenuItemVariant) (*Money, error) {
	if err := checkMoney("menu_item.base_price", item.BasePrice); err != nil {
		return nil, err
	}
	if variant != nil {
		if err := checkMoney("menu_item_variant.price_modifier", variant.PriceModifier); err != nil {
			return nil, err
		}
	}
	if item.BasePrice == nil || item.BasePrice.IsNegative() {
		return nil, invalid("menu_item", "item %q has a missing or negative base price", item.ID)
	}
	if variant == nil || variant.PriceModifier == nil {
		return item.BasePrice.Round(), nil
	}
	price := item.BasePrice.Add(variant.PriceModifier).Round()
	if price.IsNegative() {
		return nil, invalid("menu_item_variant", "variant %q makes the price of %q negative", variant.ID, item.ID)
	}
	return price, nil
}

// NewLineItem resolves a menu selection into a line item.
func NewLineItem(item MenuItem, variant *MenuItemVariant, quantity decimal.Decimal) (LineItem, error) {
	price, err := FinalPrice(item, variant)
	if err != nil {
		return LineItem{}, err
	}
	if err := CheckBounds("quantity", quantity); err != nil {
		return LineItem{}, err
	}
	if !quantity.IsPositive() {
		return LineItem{}, invalid("quantity", "must be positive for %q", item.ID)
	}
	ref, name := item.ID, item.Name
	if variant != nil {
		ref = item.ID + ":" + variant.ID
		name = item.Name + " (" + variant.Name + ")"
	}
	return LineItem{Ref: ref, Name: name, UnitPrice: price, Quantity: quantity}, nil
}

// PackageItem is a menu item inside a package. Optional items are add-ons the customer
// may confirm at extra cost.
type PackageItem struct {
	Item       MenuItem
	IsOptional bool
	Confirmed  bool
}

// MenuPackage is a fixed per-person bundle of menu items priced as a whole.
type MenuPackage struct {
	ID             string
	Name           string
	PricePerPerson *Money
	Items          []PackageItem
}

// PackageExpansion is what a package contributes to a PricingInput.
type PackageExpansion struct {
	PricePerPerson *Money
	LineItems      []LineItem
}

// Expand turns the package into engine input for guestCount guests. Included items are
// covered by the per-person price; every optional add-on becomes a line item of one
// serving per guest, flagged confirmed when the customer accepted it.
func (p *MenuPackage) Expand(guestCount int) (*PackageExpansion, error) {
	if err := checkMoney("package.price_per_person", p.PricePerPerson); err != nil {
		return nil, err
	}
	if p.PricePerPerson == nil || p.PricePerPerson.IsNegative() {
		return nil, invalid("package", "package %q has a missing or negative price per person", p.ID)
	}
	if guestCount <= 0 {
		return nil, invalid("guest_count", "must be positive, got %d", guestCount)
	}

	servings := decimal.NewFromInt(int64(guestCount))
	exp := &PackageExpansion{PricePerPerson: p.PricePerPerson.Round()}
	for _, pi := range p.Items {
		if !pi.IsOptional {
			continue
		}
		li, err := NewLineItem(pi.Item, nil, servings)
		if err != nil {
			return nil, err
		}
		li.IsOptional = true
		li.Confirmed = pi.Confirmed
		exp.LineItems = append(exp.LineItems, li)
	}
	return exp, nil
}

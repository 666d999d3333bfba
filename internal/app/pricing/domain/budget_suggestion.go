package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTolerancePercentage applies when a budget request leaves the tolerance unset.
var DefaultTolerancePercentage = decimal.NewFromInt(10)

// BudgetPreferences narrows and orders the candidate items.
type BudgetPreferences struct {
	ExcludedCategories  []string
	PreferredCategories []string
	VegetarianOnly      bool
	// TolerancePercentage is how far above the target the total may go. Nil means default.
	TolerancePercentage *decimal.Decimal
}

// BudgetRequest asks for a menu whose estimated cost lands near TargetBudget.
type BudgetRequest struct {
	TargetBudget  *Money
	GuestCount    int
	HallBasePrice *Money
	Items         []MenuItem
	Preferences   BudgetPreferences
}

// SuggestedItem is one item of a suggestion, served once per guest.
type SuggestedItem struct {
	Item          MenuItem
	Quantity      int
	EstimatedCost *Money
}

// BudgetSuggestion is the outcome of SuggestMenuForBudget.
type BudgetSuggestion struct {
	Items                    []SuggestedItem
	SuggestedPerPersonBudget *Money
	TotalEstimatedCost       *Money
	VariancePercentage       decimal.Decimal
	TolerancePercentage      decimal.Decimal
	WithinTolerance          bool
}

func (r *BudgetRequest) tolerance() decimal.Decimal {
	if r.Preferences.TolerancePercentage == nil {
		return DefaultTolerancePercentage
	}
	return *r.Preferences.TolerancePercentage
}

func (r *BudgetRequest) validate() error {
	if err := checkMoney("target_budget", r.TargetBudget); err != nil {
		return err
	}
	if err := checkMoney("hall_base_price", r.HallBasePrice); err != nil {
		return err
	}
	if err := CheckBounds("tolerance_percentage", r.tolerance()); err != nil {
		return err
	}
	if r.TargetBudget == nil || !r.TargetBudget.IsPositive() {
		return invalid("target_budget", "must be positive")
	}
	if r.GuestCount <= 0 {
		return invalid("guest_count", "must be positive, got %d", r.GuestCount)
	}
	if r.HallBasePrice != nil && r.HallBasePrice.IsNegative() {
		return invalid("hall_base_price", "must not be negative")
	}
	if tol := r.tolerance(); tol.IsNegative() || tol.GreaterThan(hundred) {
		return invalid("tolerance_percentage", "%s outside 0-100", tol)
	}
	for _, it := range r.Items {
		if err := checkMoney("items.base_price", it.BasePrice); err != nil {
			return err
		}
		if it.BasePrice == nil || it.BasePrice.IsNegative() {
			return invalid("items", "item %q has a missing or negative base price", it.ID)
		}
	}
	return nil
}

// SuggestMenuForBudget picks menu items greedily, one serving per guest, so the total
// (hall included) stays within the target plus tolerance.
//
// Unavailable, excluded and (when requested) non-vegetarian items are dropped. The rest
// are visited essential first, then preferred categories, then by price per guest
// descending, input order breaking ties; an item is taken when it still fits. When the
// target cannot be met the closest total found is returned with its variance.
func SuggestMenuForBudget(req BudgetRequest) (*BudgetSuggestion, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	tol := req.tolerance()
	guests := int64(req.GuestCount)
	ceiling := req.TargetBudget.Add(req.TargetBudget.Percent(tol)).Round()

	hall := Zero()
	if req.HallBasePrice != nil {
		hall = req.HallBasePrice.Round()
	}

	candidates := make([]MenuItem, 0, len(req.Items))
	for _, it := range req.Items {
		if !it.IsAvailable || containsString(req.Preferences.ExcludedCategories, it.CategoryID) {
			continue
		}
		if req.Preferences.VegetarianOnly && !it.IsVegetarian {
			continue
		}
		candidates = append(candidates, it)
	}
	preferred := func(it MenuItem) bool {
		return containsString(req.Preferences.PreferredCategories, it.CategoryID)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsEssential != b.IsEssential {
			return a.IsEssential
		}
		if pa, pb := preferred(a), preferred(b); pa != pb {
			return pa
		}
		return a.BasePrice.GreaterThan(b.BasePrice)
	})

	total := hall
	var picked []SuggestedItem
	for _, it := range candidates {
		cost := it.BasePrice.MultiplyByInt(guests).Round()
		if total.Add(cost).GreaterThan(ceiling) {
			continue
		}
		total = total.Add(cost)
		picked = append(picked, SuggestedItem{Item: it, Quantity: req.GuestCount, EstimatedCost: cost})
	}

	perPerson, err := req.TargetBudget.Subtract(hall).FloorAtZero().DivideByInt(guests)
	if err != nil {
		return nil, err
	}
	variance := total.Subtract(req.TargetBudget).Decimal().
		Mul(hundred).
		DivRound(req.TargetBudget.Decimal(), MoneyScale)

	return &BudgetSuggestion{
		Items:                    picked,
		SuggestedPerPersonBudget: perPerson.Round(),
		TotalEstimatedCost:       total,
		VariancePercentage:       variance,
		TolerancePercentage:      tol,
		WithinTolerance:          variance.Abs().LessThanOrEqual(tol),
	}, nil
}

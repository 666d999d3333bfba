package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_discount_tier"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_pricing_rule"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/query"
)

// PricingConfigRepo implements PricingConfigRepository for Spanner.
type PricingConfigRepo struct {
	client    *spanner.Client
	ruleModel *m_pricing_rule.Model
	tierModel *m_discount_tier.Model
}

// NewPricingConfigRepo creates a new PricingConfigRepo.
func NewPricingConfigRepo(client *spanner.Client) contracts.PricingConfigRepository {
	return &PricingConfigRepo{
		client:    client,
		ruleModel: m_pricing_rule.NewModel(),
		tierModel: m_discount_tier.NewModel(),
	}
}

// LoadSnapshot reads active rules and tiers in one read-only transaction.
func (r *PricingConfigRepo) LoadSnapshot(ctx context.Context, organizationID string) (*contracts.RuleSnapshot, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	rules, err := r.readRules(ctx, txn, organizationID)
	if err != nil {
		return nil, err
	}

	tiers, err := r.readTiers(ctx, txn, organizationID)
	if err != nil {
		return nil, err
	}

	readAt, err := txn.Timestamp()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot timestamp: %w", err)
	}

	return &contracts.RuleSnapshot{
		OrganizationID: organizationID,
		Rules:          rules,
		Tiers:          tiers,
		ReadAt:         readAt,
	}, nil
}

func rulesStatement(organizationID string, columns []string) spanner.Statement {
	return query.From(m_pricing_rule.TableName).
		Select(columns...).
		Where(query.Eq(m_pricing_rule.OrganizationID, organizationID)).
		Where(query.Eq(m_pricing_rule.IsActive, true)).
		OrderBy(m_pricing_rule.Priority, query.Desc).
		ThenBy(m_pricing_rule.CreatedAt, query.Asc).
		ThenBy(m_pricing_rule.RuleID, query.Asc).
		Build()
}

func tiersStatement(organizationID string, columns []string) spanner.Statement {
	return query.From(m_discount_tier.TableName).
		Select(columns...).
		Where(query.Eq(m_discount_tier.OrganizationID, organizationID)).
		Where(query.Eq(m_discount_tier.IsActive, true)).
		OrderBy(m_discount_tier.MinGuests, query.Asc).
		ThenBy(m_discount_tier.CreatedAt, query.Asc).
		Build()
}

func (r *PricingConfigRepo) readRules(ctx context.Context, txn *spanner.ReadOnlyTransaction, organizationID string) ([]domain.PricingRule, error) {
	iter := txn.Query(ctx, rulesStatement(organizationID, r.ruleModel.ReadColumns()))
	defer iter.Stop()

	var rules []domain.PricingRule
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate pricing rules: %w", err)
		}

		var data m_pricing_rule.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse pricing rule: %w", err)
		}

		rule, err := dataToRule(&data)
		if err != nil {
			return nil, fmt.Errorf("pricing rule %s: %w", data.RuleID, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *PricingConfigRepo) readTiers(ctx context.Context, txn *spanner.ReadOnlyTransaction, organizationID string) ([]domain.DiscountTier, error) {
	iter := txn.Query(ctx, tiersStatement(organizationID, r.tierModel.ReadColumns()))
	defer iter.Stop()

	var tiers []domain.DiscountTier
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discount tiers: %w", err)
		}

		var data m_discount_tier.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse discount tier: %w", err)
		}

		tier, err := dataToTier(&data)
		if err != nil {
			return nil, fmt.Errorf("discount tier %s: %w", data.TierID, err)
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// UpsertRuleMut creates a mutation writing a rule.
func (r *PricingConfigRepo) UpsertRuleMut(organizationID string, rule domain.PricingRule, active bool) (*spanner.Mutation, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return r.ruleModel.UpsertMut(ruleToData(organizationID, rule, active)), nil
}

// UpsertTierMut creates a mutation writing a discount tier.
func (r *PricingConfigRepo) UpsertTierMut(organizationID string, tier domain.DiscountTier, active bool) (*spanner.Mutation, error) {
	if err := tier.Validate(); err != nil {
		return nil, err
	}
	return r.tierModel.UpsertMut(&m_discount_tier.Data{
		OrganizationID:     organizationID,
		TierID:             tier.ID,
		Name:               tier.Name,
		MinGuests:          int64(tier.MinGuests),
		MaxGuests:          int64(tier.MaxGuests),
		DiscountPercentage: *tier.DiscountPercentage.Rat(),
		IsActive:           active,
	}), nil
}

// ruleToData converts a domain rule to its row.
func ruleToData(organizationID string, rule domain.PricingRule, active bool) *m_pricing_rule.Data {
	data := &m_pricing_rule.Data{
		OrganizationID:       organizationID,
		RuleID:               rule.ID,
		Name:                 rule.Name,
		RuleType:             string(rule.Type),
		Percentage:           nullNumericFromDecimal(rule.Percentage),
		FixedAmount:          nullNumericFromMoney(rule.FixedAmount),
		MinGuests:            nullInt(rule.MinGuests),
		MaxGuests:            nullInt(rule.MaxGuests),
		MinAmount:            nullNumericFromMoney(rule.MinAmount),
		MaxAmount:            nullNumericFromMoney(rule.MaxAmount),
		ApplicableEventTypes: rule.ApplicableEventTypes,
		Priority:             int64(rule.Priority),
		IsCumulative:         rule.IsCumulative,
		IsActive:             active,
	}
	for _, d := range rule.ApplicableDays {
		data.ApplicableDays = append(data.ApplicableDays, int64(d))
	}
	if rule.ValidFrom != nil {
		data.ValidFrom = spanner.NullTime{Time: *rule.ValidFrom, Valid: true}
	}
	if rule.ValidUntil != nil {
		data.ValidUntil = spanner.NullTime{Time: *rule.ValidUntil, Valid: true}
	}
	return data
}

// dataToRule converts a row to a domain rule.
func dataToRule(data *m_pricing_rule.Data) (domain.PricingRule, error) {
	rule := domain.PricingRule{
		ID:                   data.RuleID,
		Name:                 data.Name,
		Type:                 domain.RuleType(data.RuleType),
		MinGuests:            intFromNull(data.MinGuests),
		MaxGuests:            intFromNull(data.MaxGuests),
		ApplicableEventTypes: data.ApplicableEventTypes,
		Priority:             int(data.Priority),
		IsCumulative:         data.IsCumulative,
	}

	var err error
	if rule.Percentage, err = decimalFromNullNumeric(data.Percentage); err != nil {
		return rule, err
	}
	if rule.FixedAmount, err = moneyFromNullNumeric(data.FixedAmount); err != nil {
		return rule, err
	}
	if rule.MinAmount, err = moneyFromNullNumeric(data.MinAmount); err != nil {
		return rule, err
	}
	if rule.MaxAmount, err = moneyFromNullNumeric(data.MaxAmount); err != nil {
		return rule, err
	}

	for _, d := range data.ApplicableDays {
		if d < int64(time.Sunday) || d > int64(time.Saturday) {
			return rule, fmt.Errorf("applicable day %d out of range", d)
		}
		rule.ApplicableDays = append(rule.ApplicableDays, time.Weekday(d))
	}
	if data.ValidFrom.Valid {
		t := data.ValidFrom.Time
		rule.ValidFrom = &t
	}
	if data.ValidUntil.Valid {
		t := data.ValidUntil.Time
		rule.ValidUntil = &t
	}
	return rule, nil
}

func dataToTier(data *m_discount_tier.Data) (domain.DiscountTier, error) {
	pct, err := decimalFromNumeric(&data.DiscountPercentage)
	if err != nil {
		return domain.DiscountTier{}, err
	}
	return domain.DiscountTier{
		ID:                 data.TierID,
		Name:               data.Name,
		MinGuests:          int(data.MinGuests),
		MaxGuests:          int(data.MaxGuests),
		DiscountPercentage: pct,
	}, nil
}

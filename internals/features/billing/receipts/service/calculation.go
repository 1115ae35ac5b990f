package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	feemodel "fbofuel_backend/internals/features/billing/fees/model"
	feeservice "fbofuel_backend/internals/features/billing/fees/service"
	model "fbofuel_backend/internals/features/billing/receipts/model"
)

// AdditionalServiceInput is one ad hoc service requested on a draft:
// any known fee code, with an optional quantity (default 1).
type AdditionalServiceInput struct {
	FeeCode  string `json:"fee_code" validate:"required"`
	Quantity int64  `json:"quantity" validate:"omitempty,min=1"`
}

// CalculationInput is everything the engine needs, prefetched. The engine
// itself is a pure function over this struct: it never touches the database,
// which is also what makes it directly testable with in-memory fixtures.
type CalculationInput struct {
	FBOLocationID    uuid.UUID
	AircraftTypeID   uuid.UUID
	ClassificationID *uuid.UUID

	IsCAAMember bool

	FuelUpliftGallons  decimal.Decimal
	FuelPricePerGallon decimal.Decimal

	// Already resolved FBO-config-over-type-default minimum.
	MinFuelGallonsForWaiver decimal.Decimal

	// All fee rules for the FBO (the engine selects category defaults and
	// ad hoc codes itself), plus every override row and waiver tier.
	FeeRules    []feemodel.FeeRule
	Overrides   []feemodel.FeeRuleOverride
	WaiverTiers []feemodel.WaiverTier

	AdditionalServices []AdditionalServiceInput

	TaxRatePercent decimal.Decimal
}

// CalculatedLineItem is one computed receipt line before persistence.
type CalculatedLineItem struct {
	Type        model.LineItemType
	Description string
	FeeCode     *string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	IsTaxable   bool
}

// CalculationResult is the complete itemized monetary outcome for one
// transaction context.
type CalculationResult struct {
	LineItems []CalculatedLineItem

	FuelSubtotal       decimal.Decimal
	TotalFeesAmount    decimal.Decimal
	TotalWaiversAmount decimal.Decimal // positive magnitude
	TaxAmount          decimal.Decimal
	GrandTotalAmount   decimal.Decimal

	IsCAAApplied bool
}

// CalculateForTransaction computes fuel, fees, waivers, and tax for one
// fueling transaction.
//
// Tax is computed on the gross taxable base (fuel + taxable fees); waivers
// reduce the grand total but never the taxable base. Fee codes requested in
// AdditionalServices that match no configured rule are silently omitted.
func CalculateForTransaction(in CalculationInput) CalculationResult {
	var result CalculationResult

	// 1) Fuel line: always present, never waived, always taxable.
	fuelAmount := in.FuelUpliftGallons.Mul(in.FuelPricePerGallon).Round(2)
	result.FuelSubtotal = fuelAmount
	result.LineItems = append(result.LineItems, CalculatedLineItem{
		Type:        model.LineItemTypeFuel,
		Description: "Fuel",
		Quantity:    in.FuelUpliftGallons,
		UnitPrice:   in.FuelPricePerGallon,
		Amount:      fuelAmount,
		IsTaxable:   true,
	})

	// 2) Applicable fee codes: category defaults (quantity 1) plus ad hoc
	//    additional services (requested quantity, default 1; a request for a
	//    category-default code overrides its quantity).
	ruleByCode := make(map[string]feemodel.FeeRule, len(in.FeeRules))
	for _, rule := range in.FeeRules {
		ruleByCode[rule.FeeRuleFeeCode] = rule
	}

	type pendingFee struct {
		code string
		qty  decimal.Decimal
	}
	var pending []pendingFee
	qtyByCode := make(map[string]int)

	for _, rule := range in.FeeRules {
		if rule.FeeRuleAppliesToClassificationID == nil || in.ClassificationID == nil {
			continue
		}
		if *rule.FeeRuleAppliesToClassificationID != *in.ClassificationID {
			continue
		}
		pending = append(pending, pendingFee{code: rule.FeeRuleFeeCode, qty: decimal.NewFromInt(1)})
		qtyByCode[rule.FeeRuleFeeCode] = len(pending) - 1
	}
	for _, svc := range in.AdditionalServices {
		if _, known := ruleByCode[svc.FeeCode]; !known {
			continue // unknown codes are omitted, not errors
		}
		qty := svc.Quantity
		if qty <= 0 {
			qty = 1
		}
		if idx, exists := qtyByCode[svc.FeeCode]; exists {
			pending[idx].qty = decimal.NewFromInt(qty)
			continue
		}
		pending = append(pending, pendingFee{code: svc.FeeCode, qty: decimal.NewFromInt(qty)})
		qtyByCode[svc.FeeCode] = len(pending) - 1
	}

	// 3) Resolve each fee through the hierarchy and emit FEE lines.
	resolvedByCode := make(map[string]feeservice.ResolvedFee, len(pending))
	feeAmounts := make(map[string]decimal.Decimal, len(pending))
	var resolvedFees []feeservice.ResolvedFee

	for _, p := range pending {
		rule := ruleByCode[p.code]
		resolved := feeservice.ResolveFeeRule(rule, in.Overrides, in.AircraftTypeID, in.ClassificationID)
		resolvedByCode[p.code] = resolved
		resolvedFees = append(resolvedFees, resolved)

		unit := resolved.EffectiveAmount(in.IsCAAMember)
		amount := unit.Mul(p.qty).Round(2)
		feeAmounts[p.code] = amount
		result.TotalFeesAmount = result.TotalFeesAmount.Add(amount)

		code := p.code
		result.LineItems = append(result.LineItems, CalculatedLineItem{
			Type:        model.LineItemTypeFee,
			Description: resolved.FeeName,
			FeeCode:     &code,
			Quantity:    p.qty,
			UnitPrice:   unit,
			Amount:      amount,
			IsTaxable:   resolved.IsTaxable,
		})

		if in.IsCAAMember && resolved.HasCAAOverride {
			result.IsCAAApplied = true
		}
	}

	// 4–5) Waivers: exact sign-flipped offsets of the fees they cancel.
	waived := feeservice.EvaluateWaivers(
		in.FuelUpliftGallons,
		in.MinFuelGallonsForWaiver,
		resolvedFees,
		in.WaiverTiers,
		in.IsCAAMember,
	)
	for _, p := range pending {
		label, ok := waived[p.code]
		if !ok {
			continue
		}
		feeAmount := feeAmounts[p.code]
		if feeAmount.Sign() == 0 {
			continue
		}
		waiverAmount := feeAmount.Neg()
		result.TotalWaiversAmount = result.TotalWaiversAmount.Add(feeAmount)

		code := p.code
		result.LineItems = append(result.LineItems, CalculatedLineItem{
			Type:        model.LineItemTypeWaiver,
			Description: fmt.Sprintf("%s Waiver (%s)", label, resolvedByCode[p.code].FeeName),
			FeeCode:     &code,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   waiverAmount,
			Amount:      waiverAmount,
		})
	}

	// 6–7) Tax on the gross taxable base; never negative.
	taxableBase := decimal.Zero
	for _, li := range result.LineItems {
		if li.IsTaxable && (li.Type == model.LineItemTypeFuel || li.Type == model.LineItemTypeFee) {
			taxableBase = taxableBase.Add(li.Amount)
		}
	}
	if taxableBase.Sign() > 0 && in.TaxRatePercent.Sign() > 0 {
		result.TaxAmount = taxableBase.Mul(in.TaxRatePercent).Div(decimal.NewFromInt(100)).Round(2)
		result.LineItems = append(result.LineItems, CalculatedLineItem{
			Type:        model.LineItemTypeTax,
			Description: fmt.Sprintf("Tax (%s%%)", in.TaxRatePercent.String()),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   result.TaxAmount,
			Amount:      result.TaxAmount,
		})
	}

	// 8) Grand total.
	result.GrandTotalAmount = result.FuelSubtotal.
		Add(result.TotalFeesAmount).
		Sub(result.TotalWaiversAmount).
		Add(result.TaxAmount)

	return result
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	feemodel "fbofuel_backend/internals/features/billing/fees/model"
	model "fbofuel_backend/internals/features/billing/receipts/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// categoryRule builds a taxable category-default fee rule for a
// classification; waivable rules use SIMPLE_MULTIPLIER at 1.0×.
func categoryRule(code, amount string, classificationID uuid.UUID, waivable bool) feemodel.FeeRule {
	rule := feemodel.FeeRule{
		FeeRuleID:                        uuid.New(),
		FeeRuleFeeCode:                   code,
		FeeRuleFeeName:                   code + " Fee",
		FeeRuleAmount:                    dec(amount),
		FeeRuleIsTaxable:                 true,
		FeeRuleWaiverStrategy:            feemodel.WaiverStrategyNone,
		FeeRuleSimpleWaiverMultiplier:    dec("1"),
		FeeRuleAppliesToClassificationID: &classificationID,
	}
	if waivable {
		rule.FeeRuleIsPotentiallyWaivableByFuelUplift = true
		rule.FeeRuleWaiverStrategy = feemodel.WaiverStrategySimpleMultiplier
	}
	return rule
}

func lineByDescription(t *testing.T, items []CalculatedLineItem, desc string) CalculatedLineItem {
	t.Helper()
	for _, li := range items {
		if li.Description == desc {
			return li
		}
	}
	t.Fatalf("no line item with description %q", desc)
	return CalculatedLineItem{}
}

// TestCalculateItemizedTransaction walks a full transaction: 150 gallons at
// $5.00 with four classification fees of which two waive at the 150-gallon
// threshold, taxed at 8% on the gross taxable base.
func TestCalculateItemizedTransaction(t *testing.T) {
	classificationID := uuid.New()
	in := CalculationInput{
		FBOLocationID:           uuid.New(),
		AircraftTypeID:          uuid.New(),
		ClassificationID:        &classificationID,
		FuelUpliftGallons:       dec("150"),
		FuelPricePerGallon:      dec("5.00"),
		MinFuelGallonsForWaiver: dec("150"),
		FeeRules: []feemodel.FeeRule{
			categoryRule("RAMP", "75.00", classificationID, true),
			categoryRule("INFRA", "50.00", classificationID, false),
			categoryRule("HANDLING", "25.00", classificationID, false),
			categoryRule("OVERNIGHT", "35.00", classificationID, true),
		},
		TaxRatePercent: dec("8"),
	}

	result := CalculateForTransaction(in)

	require.True(t, result.FuelSubtotal.Equal(dec("750.00")))
	require.True(t, result.TotalFeesAmount.Equal(dec("185.00")))
	require.True(t, result.TotalWaiversAmount.Equal(dec("110.00")))

	// Tax applies to the gross taxable base (750 + 185), untouched by waivers.
	require.True(t, result.TaxAmount.Equal(dec("74.80")))
	require.True(t, result.GrandTotalAmount.Equal(dec("899.80")))
	require.False(t, result.IsCAAApplied)

	// 1 fuel + 4 fees + 2 waivers + 1 tax.
	require.Len(t, result.LineItems, 8)

	fuel := lineByDescription(t, result.LineItems, "Fuel")
	require.Equal(t, model.LineItemTypeFuel, fuel.Type)
	require.True(t, fuel.IsTaxable)

	ramp := lineByDescription(t, result.LineItems, "Fuel Uplift Waiver (RAMP Fee)")
	require.Equal(t, model.LineItemTypeWaiver, ramp.Type)
	require.True(t, ramp.Amount.Equal(dec("-75.00")), "waiver must exactly negate its fee")
	lineByDescription(t, result.LineItems, "Fuel Uplift Waiver (OVERNIGHT Fee)")

	tax := lineByDescription(t, result.LineItems, "Tax (8%)")
	require.Equal(t, model.LineItemTypeTax, tax.Type)
	require.True(t, tax.Amount.Equal(dec("74.80")))
}

// TestCalculateFuelLineRounding checks the draft-sized case: 200 gallons of
// Jet A at $5.75 totals exactly $1150.00 before fees.
func TestCalculateFuelLineRounding(t *testing.T) {
	in := CalculationInput{
		AircraftTypeID:     uuid.New(),
		FuelUpliftGallons:  dec("200"),
		FuelPricePerGallon: dec("5.75"),
	}

	result := CalculateForTransaction(in)
	require.True(t, result.FuelSubtotal.Equal(dec("1150.00")))
	require.True(t, result.GrandTotalAmount.Equal(dec("1150.00")))
	require.Len(t, result.LineItems, 1)
	require.True(t, result.TaxAmount.IsZero(), "no tax rate, no tax line")
}

// TestCalculateCAAMemberPricing checks that a member pays the CAA amount and
// the result is flagged as CAA-applied.
func TestCalculateCAAMemberPricing(t *testing.T) {
	classificationID := uuid.New()
	rule := categoryRule("RAMP", "75.00", classificationID, false)
	rule.FeeRuleHasCAAOverride = true
	rule.FeeRuleCAAOverrideAmount = decPtr("45.00")

	in := CalculationInput{
		AircraftTypeID:     uuid.New(),
		ClassificationID:   &classificationID,
		IsCAAMember:        true,
		FuelUpliftGallons:  dec("100"),
		FuelPricePerGallon: dec("5.00"),
		FeeRules:           []feemodel.FeeRule{rule},
	}

	result := CalculateForTransaction(in)
	require.True(t, result.IsCAAApplied)
	require.True(t, result.TotalFeesAmount.Equal(dec("45.00")))

	in.IsCAAMember = false
	result = CalculateForTransaction(in)
	require.False(t, result.IsCAAApplied)
	require.True(t, result.TotalFeesAmount.Equal(dec("75.00")))
}

// TestCalculateAdHocServices checks quantity handling: requested quantities
// multiply the unit price, a request for a category-default code overrides
// its quantity, and unknown codes are dropped without error.
func TestCalculateAdHocServices(t *testing.T) {
	classificationID := uuid.New()
	gpu := categoryRule("GPU", "40.00", classificationID, false)
	gpu.FeeRuleAppliesToClassificationID = nil // ad hoc only
	lav := categoryRule("LAV", "30.00", classificationID, false)

	in := CalculationInput{
		AircraftTypeID:     uuid.New(),
		ClassificationID:   &classificationID,
		FuelUpliftGallons:  dec("50"),
		FuelPricePerGallon: dec("5.00"),
		FeeRules:           []feemodel.FeeRule{gpu, lav},
		AdditionalServices: []AdditionalServiceInput{
			{FeeCode: "GPU", Quantity: 3},
			{FeeCode: "LAV", Quantity: 2},
			{FeeCode: "NO_SUCH_CODE"},
		},
	}

	result := CalculateForTransaction(in)

	gpuLine := lineByDescription(t, result.LineItems, "GPU Fee")
	require.True(t, gpuLine.Quantity.Equal(dec("3")))
	require.True(t, gpuLine.Amount.Equal(dec("120.00")))

	lavLine := lineByDescription(t, result.LineItems, "LAV Fee")
	require.True(t, lavLine.Quantity.Equal(dec("2")), "request overrides the category-default quantity")
	require.True(t, lavLine.Amount.Equal(dec("60.00")))

	// Fuel + GPU + LAV; the unknown code contributes nothing.
	require.Len(t, result.LineItems, 3)
	require.True(t, result.TotalFeesAmount.Equal(dec("180.00")))
}

// TestCalculateZeroAmountFeeSkipsWaiver checks that a waivable fee priced at
// zero produces no waiver line.
func TestCalculateZeroAmountFeeSkipsWaiver(t *testing.T) {
	classificationID := uuid.New()
	in := CalculationInput{
		AircraftTypeID:          uuid.New(),
		ClassificationID:        &classificationID,
		FuelUpliftGallons:       dec("200"),
		FuelPricePerGallon:      dec("5.00"),
		MinFuelGallonsForWaiver: dec("100"),
		FeeRules: []feemodel.FeeRule{
			categoryRule("COURTESY", "0.00", classificationID, true),
		},
	}

	result := CalculateForTransaction(in)
	for _, li := range result.LineItems {
		require.NotEqual(t, model.LineItemTypeWaiver, li.Type)
	}
	require.True(t, result.TotalWaiversAmount.IsZero())
}

// TestCalculateDeterministic checks the engine is a pure function: the same
// input always yields the same itemization.
func TestCalculateDeterministic(t *testing.T) {
	classificationID := uuid.New()
	in := CalculationInput{
		AircraftTypeID:          uuid.New(),
		ClassificationID:        &classificationID,
		FuelUpliftGallons:       dec("150"),
		FuelPricePerGallon:      dec("5.00"),
		MinFuelGallonsForWaiver: dec("150"),
		FeeRules: []feemodel.FeeRule{
			categoryRule("RAMP", "75.00", classificationID, true),
			categoryRule("INFRA", "50.00", classificationID, false),
		},
		TaxRatePercent: dec("8"),
	}

	first := CalculateForTransaction(in)
	second := CalculateForTransaction(in)

	require.True(t, first.GrandTotalAmount.Equal(second.GrandTotalAmount))
	require.Equal(t, len(first.LineItems), len(second.LineItems))
	for i := range first.LineItems {
		require.Equal(t, first.LineItems[i].Description, second.LineItems[i].Description)
		require.True(t, first.LineItems[i].Amount.Equal(second.LineItems[i].Amount))
	}
}

package model

type CalculationBasis string
type WaiverStrategy string

const (
	CalculationBasisFixedPrice    CalculationBasis = "FIXED_PRICE"
	CalculationBasisNotApplicable CalculationBasis = "NOT_APPLICABLE"
)

const (
	WaiverStrategyNone             WaiverStrategy = "NONE"
	WaiverStrategySimpleMultiplier WaiverStrategy = "SIMPLE_MULTIPLIER"
	WaiverStrategyTieredMultiplier WaiverStrategy = "TIERED_MULTIPLIER"
)

func (b CalculationBasis) IsValid() bool {
	return b == CalculationBasisFixedPrice || b == CalculationBasisNotApplicable
}

func (s WaiverStrategy) IsValid() bool {
	return s == WaiverStrategyNone || s == WaiverStrategySimpleMultiplier || s == WaiverStrategyTieredMultiplier
}

package model

type ReceiptStatus string
type LineItemType string

const (
	ReceiptStatusDraft     ReceiptStatus = "draft"
	ReceiptStatusGenerated ReceiptStatus = "generated"
	ReceiptStatusPaid      ReceiptStatus = "paid"
	ReceiptStatusVoid      ReceiptStatus = "void"
)

const (
	LineItemTypeFuel   LineItemType = "FUEL"
	LineItemTypeFee    LineItemType = "FEE"
	LineItemTypeWaiver LineItemType = "WAIVER"
	LineItemTypeTax    LineItemType = "TAX"
)

// The receipt state machine is strictly forward:
// draft → generated → paid; generated|paid → void. Nothing re-enters draft.

// IsMutable reports whether line items and snapshot fields may still change.
func (s ReceiptStatus) IsMutable() bool { return s == ReceiptStatusDraft }

// CanGenerate gates receipt-number assignment.
func (s ReceiptStatus) CanGenerate() bool { return s == ReceiptStatusDraft }

// CanMarkPaid gates payment marking.
func (s ReceiptStatus) CanMarkPaid() bool { return s == ReceiptStatusGenerated }

// CanVoid: drafts are deleted rather than voided, so voiding a draft is
// rejected; paid receipts stay voidable per business policy.
func (s ReceiptStatus) CanVoid() bool {
	return s == ReceiptStatusGenerated || s == ReceiptStatusPaid
}

func (s ReceiptStatus) IsValid() bool {
	switch s {
	case ReceiptStatusDraft, ReceiptStatusGenerated, ReceiptStatusPaid, ReceiptStatusVoid:
		return true
	}
	return false
}

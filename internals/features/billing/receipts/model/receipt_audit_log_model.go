package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- MODEL receipt_audit_logs ------------------------------------------------
// Append-only; no soft delete, no updates.
type ReceiptAuditLog struct {
	ReceiptAuditLogID uuid.UUID `json:"receipt_audit_log_id" gorm:"column:receipt_audit_log_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ReceiptAuditLogReceiptID uuid.UUID `json:"receipt_audit_log_receipt_id" gorm:"column:receipt_audit_log_receipt_id;type:uuid;not null;index"`

	ReceiptAuditLogAction         string        `json:"receipt_audit_log_action" gorm:"column:receipt_audit_log_action;type:varchar(40);not null"`
	ReceiptAuditLogPreviousStatus ReceiptStatus `json:"receipt_audit_log_previous_status" gorm:"column:receipt_audit_log_previous_status;type:varchar(20);not null"`
	ReceiptAuditLogReason         *string       `json:"receipt_audit_log_reason,omitempty" gorm:"column:receipt_audit_log_reason;type:text"`

	ReceiptAuditLogUserID  uuid.UUID      `json:"receipt_audit_log_user_id" gorm:"column:receipt_audit_log_user_id;type:uuid;not null"`
	ReceiptAuditLogContext datatypes.JSON `json:"receipt_audit_log_context,omitempty" gorm:"column:receipt_audit_log_context;type:jsonb"`

	ReceiptAuditLogCreatedAt time.Time `json:"receipt_audit_log_created_at" gorm:"column:receipt_audit_log_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (ReceiptAuditLog) TableName() string { return "receipt_audit_logs" }

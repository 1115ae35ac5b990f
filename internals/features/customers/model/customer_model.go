package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL customers -----------------------------------------------------
// Placeholder customers are auto-created for fuel orders without a linked
// customer; their email is synthesized on an unroutable domain.
type Customer struct {
	CustomerID uuid.UUID `json:"customer_id" gorm:"column:customer_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CustomerName  string `json:"customer_name" gorm:"column:customer_name;type:varchar(120);not null"`
	CustomerEmail string `json:"customer_email" gorm:"column:customer_email;type:varchar(254);not null"`

	CustomerIsPlaceholder bool `json:"customer_is_placeholder" gorm:"column:customer_is_placeholder;type:boolean;not null;default:false;index"`

	// CAA program membership
	CustomerIsCAAMember bool    `json:"customer_is_caa_member" gorm:"column:customer_is_caa_member;type:boolean;not null;default:false"`
	CustomerCAAMemberID *string `json:"customer_caa_member_id,omitempty" gorm:"column:customer_caa_member_id;type:varchar(60);uniqueIndex:uq_customers_caa_member_id"`

	CustomerCreatedAt time.Time      `json:"customer_created_at" gorm:"column:customer_created_at;type:timestamptz;not null;autoCreateTime"`
	CustomerUpdatedAt time.Time      `json:"customer_updated_at" gorm:"column:customer_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CustomerDeletedAt gorm.DeletedAt `json:"-" gorm:"column:customer_deleted_at;type:timestamptz;index"`
}

func (Customer) TableName() string { return "customers" }

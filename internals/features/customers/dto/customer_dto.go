package dto

import (
	"strings"

	model "fbofuel_backend/internals/features/customers/model"
)

////////////////////////////////////////////////////////////////////////////////
// CUSTOMERS — DTO
////////////////////////////////////////////////////////////////////////////////

type CustomerCreateDTO struct {
	CustomerName  string `json:"customer_name" validate:"required,max=120"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=255"`

	CustomerIsCAAMember bool    `json:"customer_is_caa_member"`
	CustomerCAAMemberID *string `json:"customer_caa_member_id,omitempty" validate:"omitempty,max=40"`
}

type CustomerUpdateDTO struct {
	CustomerName  *string `json:"customer_name,omitempty" validate:"omitempty,max=120"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email,max=255"`

	CustomerIsCAAMember *bool   `json:"customer_is_caa_member,omitempty"`
	CustomerCAAMemberID *string `json:"customer_caa_member_id,omitempty" validate:"omitempty,max=40"`
}

func CustomerCreateDTOToModel(in CustomerCreateDTO) model.Customer {
	return model.Customer{
		CustomerName:        strings.TrimSpace(in.CustomerName),
		CustomerEmail:       strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerIsCAAMember: in.CustomerIsCAAMember,
		CustomerCAAMemberID: in.CustomerCAAMemberID,
	}
}

func ApplyCustomerUpdate(m *model.Customer, in CustomerUpdateDTO) {
	if in.CustomerName != nil {
		m.CustomerName = strings.TrimSpace(*in.CustomerName)
	}
	if in.CustomerEmail != nil {
		m.CustomerEmail = strings.ToLower(strings.TrimSpace(*in.CustomerEmail))
		// an upgraded placeholder becomes a regular customer
		m.CustomerIsPlaceholder = false
	}
	if in.CustomerIsCAAMember != nil {
		m.CustomerIsCAAMember = *in.CustomerIsCAAMember
		if !*in.CustomerIsCAAMember {
			m.CustomerCAAMemberID = nil
		}
	}
	if in.CustomerCAAMemberID != nil {
		m.CustomerCAAMemberID = in.CustomerCAAMemberID
	}
}

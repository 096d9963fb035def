package order

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
	"github.com/jsamuelsen11/storesync/internal/domain"
	entity "github.com/jsamuelsen11/storesync/internal/domain/order"
)

const entityOrder = "order"

// MapOrder decodes a single order.
func MapOrder(siteID int64, body []byte) (entity.Order, error) {
	var dto OrderDTO
	if err := wire.Decode(entityOrder, body, &dto); err != nil {
		return entity.Order{}, err
	}
	if dto.ID == 0 {
		return entity.Order{}, wire.Missing(entityOrder, "id")
	}

	items := make([]entity.Item, 0, len(dto.LineItems))
	for i := range dto.LineItems {
		li := &dto.LineItems[i]
		if li.ID == 0 {
			return entity.Order{}, wire.Missing(entityOrder, fmt.Sprintf("line_items[%d].id", i))
		}
		items = append(items, entity.Item{
			ItemID:      li.ID,
			ProductID:   li.ProductID,
			VariationID: li.VariationID,
			Name:        li.Name,
			SKU:         li.SKU,
			Quantity:    li.Quantity.Decimal,
			Price:       li.Price.Decimal,
			Subtotal:    li.Subtotal.Decimal,
			Total:       li.Total.Decimal,
			Attributes:  toAttributes(li.MetaData),
		})
	}

	var refundIDs []int64
	for _, r := range dto.Refunds {
		if r.ID != 0 {
			refundIDs = append(refundIDs, r.ID)
		}
	}
	slices.Sort(refundIDs)

	return entity.Order{
		SiteID:          siteID,
		OrderID:         dto.ID,
		Number:          dto.Number,
		Status:          entity.Status(dto.Status),
		Currency:        dto.Currency,
		CustomerNote:    dto.CustomerNote,
		DateCreated:     dto.DateCreatedGMT.Time,
		DateModified:    dto.DateModifiedGMT.Time,
		Total:           dto.Total.Decimal,
		Items:           items,
		RefundIDs:       refundIDs,
		BillingAddress:  toAddress(dto.Billing),
		ShippingAddress: toAddress(dto.Shipping),
	}, nil
}

// toAttributes keeps the visible meta entries. Keys starting with an
// underscore are internal and values that are not strings are not shown.
func toAttributes(meta []MetaDataDTO) []entity.ItemAttribute {
	var attrs []entity.ItemAttribute
	for _, m := range meta {
		if strings.HasPrefix(m.Key, "_") {
			continue
		}
		raw := m.DisplayValue
		if len(raw) == 0 {
			raw = m.Value
		}
		var value string
		if json.Unmarshal(raw, &value) != nil {
			continue
		}
		name := m.DisplayKey
		if name == "" {
			name = m.Key
		}
		attrs = append(attrs, entity.ItemAttribute{MetaID: m.ID, Name: name, Value: value})
	}
	return attrs
}

func toAddress(dto *AddressDTO) *entity.Address {
	if dto == nil || *dto == (AddressDTO{}) {
		return nil
	}
	return &entity.Address{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Company:   dto.Company,
		Address1:  dto.Address1,
		Address2:  dto.Address2,
		City:      dto.City,
		State:     dto.State,
		Postcode:  dto.Postcode,
		Country:   dto.Country,
		Phone:     dto.Phone,
		Email:     dto.Email,
	}
}

// UpdateParams encodes the named fields of o as an update body. Addresses
// are validated first; an invalid or missing address, or an unknown field,
// is a *domain.SerializationError.
func UpdateParams(o *entity.Order, fields []entity.Field) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, &domain.SerializationError{Entity: entityOrder, Field: "fields", Reason: "no fields to update"}
	}

	params := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case entity.FieldCustomerNote:
			params[string(f)] = o.CustomerNote
		case entity.FieldStatus:
			if o.Status == "" {
				return nil, &domain.SerializationError{Entity: entityOrder, Field: string(f), Reason: domain.MsgRequired}
			}
			params[string(f)] = string(o.Status)
		case entity.FieldBillingAddress:
			dto, err := fromAddress(o.BillingAddress, f)
			if err != nil {
				return nil, err
			}
			params[string(f)] = dto
		case entity.FieldShippingAddress:
			dto, err := fromAddress(o.ShippingAddress, f)
			if err != nil {
				return nil, err
			}
			dto.Email = ""
			params[string(f)] = dto
		default:
			return nil, &domain.SerializationError{Entity: entityOrder, Field: string(f), Reason: "field cannot be updated"}
		}
	}
	return params, nil
}

func fromAddress(a *entity.Address, f entity.Field) (AddressDTO, error) {
	if a == nil {
		return AddressDTO{}, &domain.SerializationError{Entity: entityOrder, Field: string(f), Reason: domain.MsgRequired}
	}
	if err := a.Validate(); err != nil {
		return AddressDTO{}, &domain.SerializationError{Entity: entityOrder, Field: string(f), Reason: err.Error()}
	}
	return AddressDTO{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
		Email:     a.Email,
		Phone:     a.Phone,
	}, nil
}

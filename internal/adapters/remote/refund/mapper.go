package refund

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
	entity "github.com/jsamuelsen11/storesync/internal/domain/refund"
)

const (
	entityRefund = "refund"

	refundedItemKey = "_refunded_item_id"
)

// MapRefund decodes a single refund of orderID.
func MapRefund(siteID, orderID int64, body []byte) (entity.Refund, error) {
	var dto RefundDTO
	if err := wire.Decode(entityRefund, body, &dto); err != nil {
		return entity.Refund{}, err
	}
	return toRefund(siteID, orderID, &dto, "")
}

// MapRefunds decodes a page of refunds, keeping server order.
func MapRefunds(siteID, orderID int64, body []byte) ([]entity.Refund, error) {
	var dtos []RefundDTO
	if err := wire.Decode(entityRefund, body, &dtos); err != nil {
		return nil, err
	}

	out := make([]entity.Refund, 0, len(dtos))
	for i := range dtos {
		r, err := toRefund(siteID, orderID, &dtos[i], fmt.Sprintf("[%d].", i))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func toRefund(siteID, orderID int64, dto *RefundDTO, prefix string) (entity.Refund, error) {
	if dto.ID == 0 {
		return entity.Refund{}, wire.Missing(entityRefund, prefix+"id")
	}

	items := make([]entity.Item, 0, len(dto.LineItems))
	for i := range dto.LineItems {
		li := &dto.LineItems[i]
		field := fmt.Sprintf("%sline_items[%d]", prefix, i)
		if li.ID == 0 {
			return entity.Refund{}, wire.Missing(entityRefund, field+".id")
		}
		refundedItemID, err := refundedItem(li.MetaData)
		if err != nil {
			return entity.Refund{}, wire.Invalid(entityRefund, field+".meta_data", err)
		}
		items = append(items, entity.Item{
			ItemID:         li.ID,
			RefundedItemID: refundedItemID,
			ProductID:      li.ProductID,
			VariationID:    li.VariationID,
			Name:           li.Name,
			SKU:            li.SKU,
			Quantity:       li.Quantity.Decimal,
			Price:          li.Price.Decimal,
			Subtotal:       li.Subtotal.Decimal,
			Total:          li.Total.Decimal,
		})
	}

	return entity.Refund{
		SiteID:           siteID,
		OrderID:          orderID,
		RefundID:         dto.ID,
		DateCreated:      dto.DateCreatedGMT.Time,
		Amount:           dto.Amount.Decimal,
		Reason:           dto.Reason,
		RefundedByUserID: dto.RefundedBy,
		IsAutomated:      dto.RefundedPayment,
		Items:            items,
	}, nil
}

// refundedItem reads the _refunded_item_id meta value, which the API sends
// as either a number or a numeric string. Zero means the entry is absent.
func refundedItem(meta []MetaDataDTO) (int64, error) {
	for _, m := range meta {
		if m.Key != refundedItemKey {
			continue
		}
		var n int64
		if json.Unmarshal(m.Value, &n) == nil {
			return n, nil
		}
		var s string
		if err := json.Unmarshal(m.Value, &s); err != nil {
			return 0, fmt.Errorf("%s: %w", refundedItemKey, err)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", refundedItemKey, err)
		}
		return n, nil
	}
	return 0, nil
}

package shippinglabel

import (
	"fmt"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
	entity "github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

const (
	entityLabel  = "shipping_label"
	entityRefund = "shipping_label_refund"
)

// MapLabels decodes the labels purchased for orderID, keeping server order.
func MapLabels(siteID, orderID int64, body []byte) ([]entity.Label, error) {
	var dto LabelsResponseDTO
	if err := wire.Decode(entityLabel, body, &dto); err != nil {
		return nil, err
	}

	out := make([]entity.Label, 0, len(dto.LabelsData))
	for i := range dto.LabelsData {
		l := &dto.LabelsData[i]
		if l.LabelID == 0 {
			return nil, wire.Missing(entityLabel, fmt.Sprintf("labelsData[%d].label_id", i))
		}
		out = append(out, entity.Label{
			SiteID:          siteID,
			OrderID:         orderID,
			ShippingLabelID: l.LabelID,
			TrackingNumber:  l.Tracking,
			CarrierID:       l.CarrierID,
			ServiceName:     l.ServiceName,
			Status:          entity.Status(l.Status),
			PackageName:     l.PackageName,
			Rate:            l.Rate.Decimal,
			Currency:        l.Currency,
			ProductIDs:      l.ProductIDs,
			ProductNames:    l.ProductNames,
			DateCreated:     l.Created.Time,
			Refund:          toRefund(l.Refund),
		})
	}
	return out, nil
}

// MapRefund decodes the refund created for a label.
func MapRefund(body []byte) (entity.Refund, error) {
	var dto RefundResponseDTO
	if err := wire.Decode(entityRefund, body, &dto); err != nil {
		return entity.Refund{}, err
	}
	if dto.Refund == nil {
		return entity.Refund{}, wire.Missing(entityRefund, "refund")
	}
	if dto.Refund.Status == "" {
		return entity.Refund{}, wire.Missing(entityRefund, "refund.status")
	}
	return *toRefund(dto.Refund), nil
}

func toRefund(dto *RefundDTO) *entity.Refund {
	if dto == nil {
		return nil
	}
	return &entity.Refund{
		DateRequested: dto.RequestDate.Time,
		Status:        entity.RefundStatus(dto.Status),
	}
}

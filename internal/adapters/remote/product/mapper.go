package product

import (
	"fmt"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
	entity "github.com/jsamuelsen11/storesync/internal/domain/product"
)

const entityProduct = "product"

// MapProducts decodes a product list, keeping server order. The first image,
// when present, is the product's thumbnail.
func MapProducts(siteID int64, body []byte) ([]entity.Product, error) {
	var dtos []ProductDTO
	if err := wire.Decode(entityProduct, body, &dtos); err != nil {
		return nil, err
	}

	out := make([]entity.Product, 0, len(dtos))
	for i := range dtos {
		p := &dtos[i]
		if p.ID == 0 {
			return nil, wire.Missing(entityProduct, fmt.Sprintf("[%d].id", i))
		}
		var image string
		if len(p.Images) > 0 {
			image = p.Images[0].Src
		}
		out = append(out, entity.Product{
			SiteID:    siteID,
			ProductID: p.ID,
			ParentID:  p.ParentID,
			Name:      p.Name,
			SKU:       p.SKU,
			ImageURL:  image,
			Price:     p.Price.Decimal,
		})
	}
	return out, nil
}

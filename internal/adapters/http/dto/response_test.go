package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
	"github.com/jsamuelsen11/storesync/internal/domain/settings"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

var testTime = time.Date(2019, 2, 19, 15, 4, 5, 0, time.UTC)

func TestToTrackingListResponse(t *testing.T) {
	t.Parallel()

	trackings := []shipment.Tracking{
		{
			SiteID:           123,
			OrderID:          963,
			TrackingID:       "f1b3e2a5",
			TrackingNumber:   "11122233344",
			TrackingProvider: "TNT Express (consignment)",
			TrackingURL:      "https://www.tnt.com/?searchType=con&cons=11122233344",
			DateShipped:      testTime,
		},
		{SiteID: 123, OrderID: 963, TrackingID: "b1b94eb", TrackingNumber: "123456", TrackingProvider: "Hong Kong Post", DateShipped: testTime},
	}

	got := dto.ToTrackingListResponse(963, trackings)

	assert.Equal(t, int64(963), got.OrderID)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Trackings, 2)
	assert.Equal(t, dto.TrackingResponse{
		TrackingID:     "f1b3e2a5",
		TrackingNumber: "11122233344",
		Provider:       "TNT Express (consignment)",
		TrackingURL:    "https://www.tnt.com/?searchType=con&cons=11122233344",
		DateShipped:    "2019-02-19",
	}, got.Trackings[0])
}

func TestToTrackingListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToTrackingListResponse(1, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_id":1,"trackings":[],"count":0}`, string(b))
}

func TestToProviderGroupListResponse(t *testing.T) {
	t.Parallel()

	groups := []shipment.ProviderGroup{{
		SiteID: 123,
		Name:   "Australia",
		Providers: []shipment.Provider{
			{SiteID: 123, Name: "Australia Post", URL: "https://auspost.com.au/mypost/track/#/details/%1$s"},
			{SiteID: 123, Name: "Fastway Couriers", URL: "https://www.fastway.com.au/tools/track/?l=%1$s"},
		},
	}}

	got := dto.ToProviderGroupListResponse(groups)

	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "Australia", got.Groups[0].Name)
	assert.Equal(t, "Fastway Couriers", got.Groups[0].Providers[1].Name)
}

func TestToSelectedProvidersResponse(t *testing.T) {
	t.Parallel()

	custom := &settings.PreselectedProvider{SiteID: 123, ProviderName: "Local courier", ProviderURL: "https://courier.example.com"}

	b, err := json.Marshal(dto.ToSelectedProvidersResponse(nil, custom))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"catalog":null,"custom":{"name":"Local courier","url":"https://courier.example.com"}}`,
		string(b))
}

func TestToOrderDetailsResponse(t *testing.T) {
	t.Parallel()

	t.Run("nil slices become empty arrays", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(dto.ToOrderDetailsResponse(963, &orderdetails.Details{}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"order_id":963,"items":[],"label_groups":[]}`, string(b))
	})

	t.Run("decimals are strings", func(t *testing.T) {
		t.Parallel()
		d := &orderdetails.Details{Items: []orderdetails.Item{{
			ItemID:    11,
			ProductID: 101,
			Name:      "T-shirt",
			Quantity:  decimal.NewFromInt(2),
			Price:     decimal.RequireFromString("12.50"),
			Total:     decimal.RequireFromString("25.00"),
		}}}
		b, err := json.Marshal(dto.ToOrderDetailsResponse(963, d))
		require.NoError(t, err)
		assert.JSONEq(t, `{"order_id":963,"label_groups":[],"items":[
			{"item_id":11,"product_id":101,"name":"T-shirt","quantity":"2","price":"12.5","total":"25"}
		]}`, string(b))
	})
}

func TestNewSyncResponse(t *testing.T) {
	t.Parallel()

	local := time.Date(2019, 2, 19, 17, 4, 5, 0, time.FixedZone("EET", 2*60*60))
	got := dto.NewSyncResponse(123, 963, local)

	assert.Equal(t, "2019-02-19T15:04:05Z", got.SyncedAt)
}

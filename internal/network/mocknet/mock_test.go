package mocknet_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/network/mocknet"
)

func trackingsRequest(orderID string) network.Request {
	return network.Request{
		SiteID:    123,
		Method:    http.MethodGet,
		Namespace: network.NamespaceShipmentTracking,
		Path:      "orders/" + orderID + "/trackings/",
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a.json": {Data: []byte(`"a"`)},
		"b.json": {Data: []byte(`"b"`)},
	}
}

func TestExecute_NoFixtureIsMissingFixtureError(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())

	_, err := n.Execute(context.Background(), trackingsRequest("963"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingFixture)
}

func TestExecute_SimulateResponseExhausts(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponse("orders/963/trackings", "a.json")

	body, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(body))

	_, err = n.Execute(context.Background(), trackingsRequest("963"))
	assert.ErrorIs(t, err, domain.ErrMissingFixture)
}

func TestExecute_SimulateResponseQueuesInOrder(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponse("trackings", "a.json")
	n.SimulateResponse("trackings", "b.json")

	first, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)
	second, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)

	assert.Equal(t, `"a"`, string(first))
	assert.Equal(t, `"b"`, string(second))
}

func TestExecute_SimulateResponseAlwaysRepeats(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("trackings", "a.json")

	for range 3 {
		body, err := n.Execute(context.Background(), trackingsRequest("963"))
		require.NoError(t, err)
		assert.Equal(t, `"a"`, string(body))
	}
}

func TestExecute_OnceBeatsAlways(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("trackings", "a.json")
	n.SimulateResponse("trackings", "b.json")

	first, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)
	second, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)

	assert.Equal(t, `"b"`, string(first))
	assert.Equal(t, `"a"`, string(second))
}

func TestExecute_LongestSuffixWins(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("trackings", "a.json")
	n.SimulateResponseAlways("orders/963/trackings", "b.json")

	body, err := n.Execute(context.Background(), trackingsRequest("963"))
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(body))

	body, err = n.Execute(context.Background(), trackingsRequest("100"))
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(body))
}

func TestExecute_SuffixMatchesWholeSegments(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("3/trackings", "a.json")

	_, err := n.Execute(context.Background(), trackingsRequest("963"))

	assert.ErrorIs(t, err, domain.ErrMissingFixture)
}

func TestExecute_SimulateErrorIsDistinctFromMissingFixture(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	n := mocknet.New(testFS())
	n.SimulateError("trackings", boom)

	_, err := n.Execute(context.Background(), trackingsRequest("963"))

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrMissingFixture)
}

func TestExecute_UnknownFixtureFile(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponse("trackings", "nope.json")

	_, err := n.Execute(context.Background(), trackingsRequest("963"))

	assert.ErrorIs(t, err, domain.ErrMissingFixture)
}

func TestExecute_SimulateRaw(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateRaw("trackings", nil)

	body, err := n.Execute(context.Background(), trackingsRequest("963"))

	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestExecute_CanceledContext(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("trackings", "a.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Execute(ctx, trackingsRequest("963"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, n.Requests())
}

func TestRequests_RecordsAndRemoveAllResets(t *testing.T) {
	t.Parallel()

	n := mocknet.New(testFS())
	n.SimulateResponseAlways("trackings", "a.json")

	_, _ = n.Execute(context.Background(), trackingsRequest("963"))
	_, _ = n.Execute(context.Background(), trackingsRequest("100"))

	reqs := n.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "wc-shipment-tracking/v3/orders/963/trackings", reqs[0].Route())

	n.RemoveAll()
	assert.Empty(t, n.Requests())
	_, err := n.Execute(context.Background(), trackingsRequest("963"))
	assert.ErrorIs(t, err, domain.ErrMissingFixture)
}

func TestNew_DefaultsToEmbeddedFixtures(t *testing.T) {
	t.Parallel()

	n := mocknet.New(nil)
	n.SimulateResponse("trackings", "shipment-trackings.json")

	body, err := n.Execute(context.Background(), trackingsRequest("963"))

	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

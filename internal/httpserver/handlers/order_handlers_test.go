package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodtrack/internal/models"
)

func TestSaveOrdersSkipsEntriesWithoutWorkCenter(t *testing.T) {
	db, h := newTestEnv(t)
	user := seedUser(t, db, "worker", "secret", false, true)
	wc1 := seedWorkCenter(t, db, "Assembly", true)
	wc2 := seedWorkCenter(t, db, "Packing", true)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodPost, "/orders", tok, map[string]any{
		"order_type": "IN",
		"entries": []map[string]any{
			{"workcenter_id": wc1.ID, "production_order": "PO100", "quantity": 50},
			{"production_order": "PO200", "quantity": 10},            // no work center: skipped
			{"workcenter_id": wc2.ID, "production_order": " PO300 "}, // no quantity: 0
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Saved int `json:"saved"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Saved)

	var orders []models.ProductionOrder
	require.NoError(t, db.Order("id asc").Find(&orders).Error)
	require.Len(t, orders, 2)
	assert.Equal(t, "PO100", orders[0].ProductionOrder)
	assert.Equal(t, 50, orders[0].Quantity)
	assert.Equal(t, "PO300", orders[1].ProductionOrder, "code should be trimmed")
	assert.Equal(t, 0, orders[1].Quantity)
	for _, o := range orders {
		assert.Equal(t, models.OrderTypeIn, o.OrderType)
		assert.Equal(t, user.ID, o.UserID)
	}
}

func TestSaveOrdersRejectsBadOrderType(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	wc := seedWorkCenter(t, db, "Assembly", true)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodPost, "/orders", tok, map[string]any{
		"order_type": "SIDEWAYS",
		"entries":    []map[string]any{{"workcenter_id": wc.ID, "production_order": "PO1"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	db.Model(&models.ProductionOrder{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSaveOrdersBatchIsAllOrNothing(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	wc := seedWorkCenter(t, db, "Assembly", true)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodPost, "/orders", tok, map[string]any{
		"order_type": "OUT",
		"entries": []map[string]any{
			{"workcenter_id": wc.ID, "production_order": "PO1", "quantity": 5},
			{"workcenter_id": wc.ID, "production_order": "PO2", "quantity": -3},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The valid first row must have been rolled back with the batch.
	var count int64
	db.Model(&models.ProductionOrder{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestListWorkCentersOnlyActive(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	seedWorkCenter(t, db, "Assembly", true)
	seedWorkCenter(t, db, "Retired", false)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodGet, "/workcenters", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wcs []models.WorkCenter
	decodeBody(t, rec, &wcs)
	require.Len(t, wcs, 1)
	assert.Equal(t, "Assembly", wcs[0].Name)
}

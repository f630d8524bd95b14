package workorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	property := core.Property{
		ID:        "prop1",
		ClientID:  "client1",
		CreatedBy: "user1",
		Address:   "12 Harbor Lane",
		CDate:     time.Now(),
	}
	err := db.Create(&property).Error
	assert.NoError(t, err)

	workOrder := core.WorkOrder{
		ID:         "wo1",
		ClientID:   "client1",
		PropertyID: "prop1",
		CreatedBy:  "user1",
		Title:      "leaking faucet",
		Claimed:    false,
		CDate:      time.Now(),
	}
	err = db.Create(&workOrder).Error
	assert.NoError(t, err)

	found, err := repo.GetWorkOrder(ctx, "wo1")
	if assert.NoError(t, err) {
		assert.Equal(t, "wo1", found.ID)
		assert.Equal(t, "user1", found.CreatedBy)
	}

	_, err = repo.GetWorkOrder(ctx, "ghost")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	owner, err := repo.GetPropertyOwner(ctx, "prop1")
	if assert.NoError(t, err) {
		assert.Equal(t, "user1", owner)
	}

	unclaimed, err := repo.ListUnclaimed(ctx, "client1")
	if assert.NoError(t, err) {
		assert.Len(t, unclaimed, 1)
	}

	assigned, err := repo.GetAssignedUsers(ctx, "wo1")
	if assert.NoError(t, err) {
		assert.Empty(t, assigned)
	}

	err = repo.CreateAssignment(ctx, core.WorkOrderAssignment{
		WorkOrderID: "wo1",
		UserID:      "staff1",
	})
	assert.NoError(t, err)

	assigned, err = repo.GetAssignedUsers(ctx, "wo1")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"staff1"}, assigned)
	}

	// claiming removes the work order from the available queue
	unclaimed, err = repo.ListUnclaimed(ctx, "client1")
	if assert.NoError(t, err) {
		assert.Empty(t, unclaimed)
	}
}

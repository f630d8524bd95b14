package workorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stewardhq/steward/core"
	mock_workorder "github.com/stewardhq/steward/x/workorder/mock"
)

func TestBuildContextUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	s := NewService(mockRepo)

	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant"}

	pctx, data, err := s.BuildContext(context.Background(), actor, "user", "user2")
	assert.NoError(t, err)
	assert.Equal(t, "user2", pctx.ResourceOwnerID)
	assert.Equal(t, "user2", data["_id"])
}

func TestBuildContextProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetPropertyOwner(gomock.Any(), "prop1").Return("user1", nil)

	s := NewService(mockRepo)

	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant"}

	pctx, data, err := s.BuildContext(context.Background(), actor, "property", "prop1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", pctx.ResourceOwnerID)
	assert.Equal(t, "user1", data["createdBy"])
}

func TestBuildContextMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetWorkOrder(gomock.Any(), "wo1").Return(core.WorkOrder{
		ID:        "wo1",
		ClientID:  "client1",
		CreatedBy: "user1",
	}, nil)
	mockRepo.EXPECT().GetAssignedUsers(gomock.Any(), "wo1").Return([]string{"staff1"}, nil)

	s := NewService(mockRepo)

	actor := core.Actor{UserID: "staff1", ClientID: "client1", Role: "staff"}

	pctx, data, err := s.BuildContext(context.Background(), actor, "maintenance", "wo1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", pctx.ResourceOwnerID)
	assert.Equal(t, []string{"staff1"}, pctx.AssignedUsers)
	assert.Equal(t, "user1", data["createdBy"])
	assert.Equal(t, []string{"staff1"}, data["assignedUsers"])
}

func TestBuildContextNoInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	s := NewService(mockRepo)

	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant"}

	pctx, data, err := s.BuildContext(context.Background(), actor, "maintenance", "")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "user1", pctx.UserID)
	assert.Equal(t, "client1", pctx.ClientID)
}

func TestBuildContextUnknownWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetWorkOrder(gomock.Any(), "ghost").Return(core.WorkOrder{}, core.NewErrorNotFound())

	s := NewService(mockRepo)

	actor := core.Actor{UserID: "staff1", ClientID: "client1", Role: "staff"}

	_, _, err := s.BuildContext(context.Background(), actor, "maintenance", "ghost")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

func TestAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetWorkOrder(gomock.Any(), "wo1").Return(core.WorkOrder{ID: "wo1"}, nil)
	mockRepo.EXPECT().CreateAssignment(gomock.Any(), core.WorkOrderAssignment{
		WorkOrderID: "wo1",
		UserID:      "staff1",
	}).Return(nil)

	s := NewService(mockRepo)

	err := s.Assign(context.Background(), "wo1", "staff1")
	assert.NoError(t, err)
}

func TestAssignUnknownWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_workorder.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetWorkOrder(gomock.Any(), "ghost").Return(core.WorkOrder{}, core.NewErrorNotFound())

	s := NewService(mockRepo)

	err := s.Assign(context.Background(), "ghost", "staff1")
	assert.Error(t, err)
}

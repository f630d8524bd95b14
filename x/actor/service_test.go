package actor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stewardhq/steward/core"
	mock_core "github.com/stewardhq/steward/core/mock"
	"github.com/stewardhq/steward/util"
	mock_actor "github.com/stewardhq/steward/x/actor/mock"
)

func TestCurrentProjectionHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []string{"property:read:mine", "property:update:mine"}

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(core.User{
		ID:       "user1",
		ClientID: "client1",
		Role:     "tenant",
		Status:   core.UserStatusActive,
	}, nil)
	mockRepo.EXPECT().GetProjection(gomock.Any(), "user1").Return(cached, nil)

	mockPermission := mock_core.NewMockPermissionService(ctrl)

	s := NewService(mockRepo, mockPermission, util.Config{})

	actor, err := s.Current(context.Background(), "user1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", actor.UserID)
	assert.Equal(t, "tenant", actor.Role)
	assert.True(t, actor.Connected)
	assert.Equal(t, cached, actor.Permissions)
}

func TestCurrentProjectionMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	computed := []string{"maintenance:read:any"}

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "staff1").Return(core.User{
		ID:       "staff1",
		ClientID: "client1",
		Role:     "staff",
		Status:   core.UserStatusActive,
	}, nil)
	mockRepo.EXPECT().GetProjection(gomock.Any(), "staff1").Return(nil, errors.New("cache miss"))
	mockRepo.EXPECT().SetProjection(gomock.Any(), "staff1", computed).Return(nil)

	mockPermission := mock_core.NewMockPermissionService(ctrl)
	mockPermission.EXPECT().Populate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, actor core.Actor) core.Actor {
			actor.Permissions = computed
			return actor
		},
	)

	s := NewService(mockRepo, mockPermission, util.Config{})

	actor, err := s.Current(context.Background(), "staff1")
	assert.NoError(t, err)
	assert.Equal(t, computed, actor.Permissions)
}

func TestCurrentCacheWriteFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	computed := []string{"maintenance:read:any"}

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "staff1").Return(core.User{
		ID:     "staff1",
		Role:   "staff",
		Status: core.UserStatusActive,
	}, nil)
	mockRepo.EXPECT().GetProjection(gomock.Any(), "staff1").Return(nil, errors.New("cache miss"))
	mockRepo.EXPECT().SetProjection(gomock.Any(), "staff1", computed).Return(errors.New("redis down"))

	mockPermission := mock_core.NewMockPermissionService(ctrl)
	mockPermission.EXPECT().Populate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, actor core.Actor) core.Actor {
			actor.Permissions = computed
			return actor
		},
	)

	s := NewService(mockRepo, mockPermission, util.Config{})

	actor, err := s.Current(context.Background(), "staff1")
	assert.NoError(t, err)
	assert.Equal(t, computed, actor.Permissions)
}

func TestCurrentDisconnectedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "user2").Return(core.User{
		ID:     "user2",
		Role:   "tenant",
		Status: core.UserStatusDisconnected,
	}, nil)
	mockRepo.EXPECT().GetProjection(gomock.Any(), "user2").Return([]string{}, nil)

	mockPermission := mock_core.NewMockPermissionService(ctrl)

	s := NewService(mockRepo, mockPermission, util.Config{})

	actor, err := s.Current(context.Background(), "user2")
	assert.NoError(t, err)
	assert.False(t, actor.Connected)
}

func TestCurrentUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "ghost").Return(core.User{}, core.NewErrorNotFound())

	mockPermission := mock_core.NewMockPermissionService(ctrl)

	s := NewService(mockRepo, mockPermission, util.Config{})

	_, err := s.Current(context.Background(), "ghost")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

func TestInvalidateProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().DeleteProjection(gomock.Any(), "user1").Return(nil)

	mockPermission := mock_core.NewMockPermissionService(ctrl)

	s := NewService(mockRepo, mockPermission, util.Config{})

	err := s.InvalidateProjection(context.Background(), "user1")
	assert.NoError(t, err)
}

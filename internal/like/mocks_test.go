package like

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

// MockLikeRepository is a mock of LikeRepository interface.
type MockLikeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLikeRepositoryMockRecorder
}

// MockLikeRepositoryMockRecorder is the mock recorder for MockLikeRepository.
type MockLikeRepositoryMockRecorder struct {
	mock *MockLikeRepository
}

// NewMockLikeRepository creates a new mock instance.
func NewMockLikeRepository(ctrl *gomock.Controller) *MockLikeRepository {
	mock := &MockLikeRepository{ctrl: ctrl}
	mock.recorder = &MockLikeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLikeRepository) EXPECT() *MockLikeRepositoryMockRecorder {
	return m.recorder
}

func (m *MockLikeRepository) Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Toggle", ctx, target, targetID, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLikeRepositoryMockRecorder) Toggle(ctx, target, targetID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Toggle", reflect.TypeOf((*MockLikeRepository)(nil).Toggle), ctx, target, targetID, userID)
}

func (m *MockLikeRepository) TargetExists(ctx context.Context, target Target, targetID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TargetExists", ctx, target, targetID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLikeRepositoryMockRecorder) TargetExists(ctx, target, targetID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TargetExists", reflect.TypeOf((*MockLikeRepository)(nil).TargetExists), ctx, target, targetID)
}

func (m *MockLikeRepository) ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForTarget", ctx, target, targetID, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.LikeRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLikeRepositoryMockRecorder) ListForTarget(ctx, target, targetID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForTarget", reflect.TypeOf((*MockLikeRepository)(nil).ListForTarget), ctx, target, targetID, params)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LikedVideos", ctx, userID, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.LikedVideoRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLikeRepositoryMockRecorder) LikedVideos(ctx, userID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LikedVideos", reflect.TypeOf((*MockLikeRepository)(nil).LikedVideos), ctx, userID, params)
}

// mockLikeService is a testify mock of LikeService for handler tests.
type mockLikeService struct {
	mock.Mock
}

func (m *mockLikeService) Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (*ToggleResult, error) {
	args := m.Called(ctx, target, targetID, userID)
	r, _ := args.Get(0).(*ToggleResult)
	return r, args.Error(1)
}

func (m *mockLikeService) ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error) {
	args := m.Called(ctx, target, targetID, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.LikeRow])
	return p, args.Error(1)
}

func (m *mockLikeService) LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error) {
	args := m.Called(ctx, userID, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.LikedVideoRow])
	return p, args.Error(1)
}

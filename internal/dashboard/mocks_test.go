package dashboard

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
	"vidtube/internal/query"
)

// MockDashboardRepository is a mock of DashboardRepository interface.
type MockDashboardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockDashboardRepositoryMockRecorder
}

// MockDashboardRepositoryMockRecorder is the mock recorder for MockDashboardRepository.
type MockDashboardRepositoryMockRecorder struct {
	mock *MockDashboardRepository
}

// NewMockDashboardRepository creates a new mock instance.
func NewMockDashboardRepository(ctrl *gomock.Controller) *MockDashboardRepository {
	mock := &MockDashboardRepository{ctrl: ctrl}
	mock.recorder = &MockDashboardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDashboardRepository) EXPECT() *MockDashboardRepositoryMockRecorder {
	return m.recorder
}

func (m *MockDashboardRepository) ChannelExists(ctx context.Context, channel primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChannelExists", ctx, channel)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) ChannelExists(ctx, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChannelExists", reflect.TypeOf((*MockDashboardRepository)(nil).ChannelExists), ctx, channel)
}

func (m *MockDashboardRepository) SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubscriberCount", ctx, channel)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) SubscriberCount(ctx, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubscriberCount", reflect.TypeOf((*MockDashboardRepository)(nil).SubscriberCount), ctx, channel)
}

func (m *MockDashboardRepository) VideoTotals(ctx context.Context, channel primitive.ObjectID) (VideoTotals, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VideoTotals", ctx, channel)
	ret0, _ := ret[0].(VideoTotals)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) VideoTotals(ctx, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VideoTotals", reflect.TypeOf((*MockDashboardRepository)(nil).VideoTotals), ctx, channel)
}

func (m *MockDashboardRepository) LikeCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LikeCount", ctx, channel)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) LikeCount(ctx, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LikeCount", reflect.TypeOf((*MockDashboardRepository)(nil).LikeCount), ctx, channel)
}

func (m *MockDashboardRepository) VideoStats(ctx context.Context, channel primitive.ObjectID) ([]dbmongo.VideoStat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VideoStats", ctx, channel)
	ret0, _ := ret[0].([]dbmongo.VideoStat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) VideoStats(ctx, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VideoStats", reflect.TypeOf((*MockDashboardRepository)(nil).VideoStats), ctx, channel)
}

func (m *MockDashboardRepository) ChannelVideos(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChannelVideos", ctx, listing)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.VideoRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDashboardRepositoryMockRecorder) ChannelVideos(ctx, listing interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChannelVideos", reflect.TypeOf((*MockDashboardRepository)(nil).ChannelVideos), ctx, listing)
}

// mockDashboardService is a testify mock of DashboardService for handler tests.
type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*Stats, error) {
	args := m.Called(ctx, channel)
	s, _ := args.Get(0).(*Stats)
	return s, args.Error(1)
}

func (m *mockDashboardService) ChannelVideos(ctx context.Context, channel primitive.ObjectID, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	args := m.Called(ctx, channel, listing)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.VideoRow])
	return p, args.Error(1)
}

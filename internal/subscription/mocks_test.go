package subscription

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

// MockSubscriptionRepository is a mock of SubscriptionRepository interface.
type MockSubscriptionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriptionRepositoryMockRecorder
}

// MockSubscriptionRepositoryMockRecorder is the mock recorder for MockSubscriptionRepository.
type MockSubscriptionRepositoryMockRecorder struct {
	mock *MockSubscriptionRepository
}

// NewMockSubscriptionRepository creates a new mock instance.
func NewMockSubscriptionRepository(ctrl *gomock.Controller) *MockSubscriptionRepository {
	mock := &MockSubscriptionRepository{ctrl: ctrl}
	mock.recorder = &MockSubscriptionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSubscriptionRepository) EXPECT() *MockSubscriptionRepositoryMockRecorder {
	return m.recorder
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Toggle", ctx, subscriber, channel)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubscriptionRepositoryMockRecorder) Toggle(ctx, subscriber, channel interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Toggle", reflect.TypeOf((*MockSubscriptionRepository)(nil).Toggle), ctx, subscriber, channel)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribers", ctx, channel, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.SubscriberRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubscriptionRepositoryMockRecorder) Subscribers(ctx, channel, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribers", reflect.TypeOf((*MockSubscriptionRepository)(nil).Subscribers), ctx, channel, params)
}

func (m *MockSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubscribedChannels", ctx, subscriber, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.SubscribedChannelRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubscriptionRepositoryMockRecorder) SubscribedChannels(ctx, subscriber, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubscribedChannels", reflect.TypeOf((*MockSubscriptionRepository)(nil).SubscribedChannels), ctx, subscriber, params)
}

func (m *MockSubscriptionRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserExists", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubscriptionRepositoryMockRecorder) UserExists(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserExists", reflect.TypeOf((*MockSubscriptionRepository)(nil).UserExists), ctx, userID)
}

// mockSubscriptionService is a testify mock of SubscriptionService for handler tests.
type mockSubscriptionService struct {
	mock.Mock
}

func (m *mockSubscriptionService) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*ToggleResult, error) {
	args := m.Called(ctx, subscriber, channel)
	r, _ := args.Get(0).(*ToggleResult)
	return r, args.Error(1)
}

func (m *mockSubscriptionService) Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error) {
	args := m.Called(ctx, channel, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.SubscriberRow])
	return p, args.Error(1)
}

func (m *mockSubscriptionService) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error) {
	args := m.Called(ctx, subscriber, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.SubscribedChannelRow])
	return p, args.Error(1)
}

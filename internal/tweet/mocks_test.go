package tweet

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

// MockTweetRepository is a mock of TweetRepository interface.
type MockTweetRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTweetRepositoryMockRecorder
}

// MockTweetRepositoryMockRecorder is the mock recorder for MockTweetRepository.
type MockTweetRepositoryMockRecorder struct {
	mock *MockTweetRepository
}

// NewMockTweetRepository creates a new mock instance.
func NewMockTweetRepository(ctrl *gomock.Controller) *MockTweetRepository {
	mock := &MockTweetRepository{ctrl: ctrl}
	mock.recorder = &MockTweetRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTweetRepository) EXPECT() *MockTweetRepositoryMockRecorder {
	return m.recorder
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *dbmongo.Tweet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tweet)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTweetRepositoryMockRecorder) Create(ctx, tweet interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTweetRepository)(nil).Create), ctx, tweet)
}

func (m *MockTweetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Tweet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.Tweet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTweetRepositoryMockRecorder) FindByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockTweetRepository)(nil).FindByID), ctx, id)
}

func (m *MockTweetRepository) ListForUser(ctx context.Context, ownerID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForUser", ctx, ownerID, viewer, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.TweetRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTweetRepositoryMockRecorder) ListForUser(ctx, ownerID, viewer, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForUser", reflect.TypeOf((*MockTweetRepository)(nil).ListForUser), ctx, ownerID, viewer, params)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateContent", ctx, id, content)
	ret0, _ := ret[0].(*dbmongo.Tweet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTweetRepositoryMockRecorder) UpdateContent(ctx, id, content interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateContent", reflect.TypeOf((*MockTweetRepository)(nil).UpdateContent), ctx, id, content)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTweetRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTweetRepository)(nil).Delete), ctx, id)
}

func (m *MockTweetRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserExists", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTweetRepositoryMockRecorder) UserExists(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserExists", reflect.TypeOf((*MockTweetRepository)(nil).UserExists), ctx, userID)
}

// mockTweetService is a testify mock of TweetService for handler tests.
type mockTweetService struct {
	mock.Mock
}

func (m *mockTweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	args := m.Called(ctx, owner, content)
	t, _ := args.Get(0).(*dbmongo.Tweet)
	return t, args.Error(1)
}

func (m *mockTweetService) ListForUser(ctx context.Context, userID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error) {
	args := m.Called(ctx, userID, viewer, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.TweetRow])
	return p, args.Error(1)
}

func (m *mockTweetService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	args := m.Called(ctx, id, owner, content)
	t, _ := args.Get(0).(*dbmongo.Tweet)
	return t, args.Error(1)
}

func (m *mockTweetService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *mockTweetService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

package comment

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

// MockCommentRepository is a mock of CommentRepository interface.
type MockCommentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCommentRepositoryMockRecorder
}

// MockCommentRepositoryMockRecorder is the mock recorder for MockCommentRepository.
type MockCommentRepositoryMockRecorder struct {
	mock *MockCommentRepository
}

// NewMockCommentRepository creates a new mock instance.
func NewMockCommentRepository(ctrl *gomock.Controller) *MockCommentRepository {
	mock := &MockCommentRepository{ctrl: ctrl}
	mock.recorder = &MockCommentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommentRepository) EXPECT() *MockCommentRepositoryMockRecorder {
	return m.recorder
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *dbmongo.Comment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, comment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCommentRepositoryMockRecorder) Create(ctx, comment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCommentRepository)(nil).Create), ctx, comment)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Comment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.Comment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCommentRepositoryMockRecorder) FindByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockCommentRepository)(nil).FindByID), ctx, id)
}

func (m *MockCommentRepository) ListForVideo(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForVideo", ctx, videoID, viewer, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.CommentRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCommentRepositoryMockRecorder) ListForVideo(ctx, videoID, viewer, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForVideo", reflect.TypeOf((*MockCommentRepository)(nil).ListForVideo), ctx, videoID, viewer, params)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateContent", ctx, id, content)
	ret0, _ := ret[0].(*dbmongo.Comment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCommentRepositoryMockRecorder) UpdateContent(ctx, id, content interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateContent", reflect.TypeOf((*MockCommentRepository)(nil).UpdateContent), ctx, id, content)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCommentRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCommentRepository)(nil).Delete), ctx, id)
}

func (m *MockCommentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VideoExists", ctx, videoID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCommentRepositoryMockRecorder) VideoExists(ctx, videoID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VideoExists", reflect.TypeOf((*MockCommentRepository)(nil).VideoExists), ctx, videoID)
}

// mockCommentService is a testify mock of CommentService for handler tests.
type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	args := m.Called(ctx, videoID, owner, content)
	c, _ := args.Get(0).(*dbmongo.Comment)
	return c, args.Error(1)
}

func (m *mockCommentService) List(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error) {
	args := m.Called(ctx, videoID, viewer, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.CommentRow])
	return p, args.Error(1)
}

func (m *mockCommentService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	args := m.Called(ctx, id, owner, content)
	c, _ := args.Get(0).(*dbmongo.Comment)
	return c, args.Error(1)
}

func (m *mockCommentService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *mockCommentService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

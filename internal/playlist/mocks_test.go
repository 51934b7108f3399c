package playlist

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

// MockPlaylistRepository is a mock of PlaylistRepository interface.
type MockPlaylistRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlaylistRepositoryMockRecorder
}

// MockPlaylistRepositoryMockRecorder is the mock recorder for MockPlaylistRepository.
type MockPlaylistRepositoryMockRecorder struct {
	mock *MockPlaylistRepository
}

// NewMockPlaylistRepository creates a new mock instance.
func NewMockPlaylistRepository(ctrl *gomock.Controller) *MockPlaylistRepository {
	mock := &MockPlaylistRepository{ctrl: ctrl}
	mock.recorder = &MockPlaylistRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlaylistRepository) EXPECT() *MockPlaylistRepositoryMockRecorder {
	return m.recorder
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *dbmongo.Playlist) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, playlist)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlaylistRepositoryMockRecorder) Create(ctx, playlist interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPlaylistRepository)(nil).Create), ctx, playlist)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Playlist, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.Playlist)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) FindByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockPlaylistRepository)(nil).FindByID), ctx, id)
}

func (m *MockPlaylistRepository) FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindRow", ctx, id)
	ret0, _ := ret[0].(*dbmongo.PlaylistRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) FindRow(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindRow", reflect.TypeOf((*MockPlaylistRepository)(nil).FindRow), ctx, id)
}

func (m *MockPlaylistRepository) ListForUser(ctx context.Context, ownerID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForUser", ctx, ownerID, params)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.PlaylistRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) ListForUser(ctx, ownerID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForUser", reflect.TypeOf((*MockPlaylistRepository)(nil).ListForUser), ctx, ownerID, params)
}

func (m *MockPlaylistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDetails", ctx, id, name, description)
	ret0, _ := ret[0].(*dbmongo.Playlist)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) UpdateDetails(ctx, id, name, description interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDetails", reflect.TypeOf((*MockPlaylistRepository)(nil).UpdateDetails), ctx, id, name, description)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlaylistRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPlaylistRepository)(nil).Delete), ctx, id)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddVideo", ctx, id, videoID)
	ret0, _ := ret[0].(*dbmongo.Playlist)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockPlaylistRepositoryMockRecorder) AddVideo(ctx, id, videoID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddVideo", reflect.TypeOf((*MockPlaylistRepository)(nil).AddVideo), ctx, id, videoID)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveVideo", ctx, id, videoID)
	ret0, _ := ret[0].(*dbmongo.Playlist)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockPlaylistRepositoryMockRecorder) RemoveVideo(ctx, id, videoID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveVideo", reflect.TypeOf((*MockPlaylistRepository)(nil).RemoveVideo), ctx, id, videoID)
}

func (m *MockPlaylistRepository) ExistingVideos(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistingVideos", ctx, ids)
	ret0, _ := ret[0].([]primitive.ObjectID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) ExistingVideos(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistingVideos", reflect.TypeOf((*MockPlaylistRepository)(nil).ExistingVideos), ctx, ids)
}

func (m *MockPlaylistRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserExists", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPlaylistRepositoryMockRecorder) UserExists(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserExists", reflect.TypeOf((*MockPlaylistRepository)(nil).UserExists), ctx, userID)
}

// mockPlaylistService is a testify mock of PlaylistService for handler tests.
type mockPlaylistService struct {
	mock.Mock
}

func (m *mockPlaylistService) Create(ctx context.Context, owner primitive.ObjectID, in CreateInput) (*dbmongo.Playlist, error) {
	args := m.Called(ctx, owner, in)
	p, _ := args.Get(0).(*dbmongo.Playlist)
	return p, args.Error(1)
}

func (m *mockPlaylistService) ListForUser(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error) {
	args := m.Called(ctx, userID, params)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.PlaylistRow])
	return p, args.Error(1)
}

func (m *mockPlaylistService) Get(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*dbmongo.PlaylistRow)
	return p, args.Error(1)
}

func (m *mockPlaylistService) Update(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	args := m.Called(ctx, id, owner, name, description)
	p, _ := args.Get(0).(*dbmongo.Playlist)
	return p, args.Error(1)
}

func (m *mockPlaylistService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *mockPlaylistService) AddVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	args := m.Called(ctx, id, videoID, owner)
	p, _ := args.Get(0).(*dbmongo.Playlist)
	return p, args.Error(1)
}

func (m *mockPlaylistService) RemoveVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	args := m.Called(ctx, id, videoID, owner)
	p, _ := args.Get(0).(*dbmongo.Playlist)
	return p, args.Error(1)
}

func (m *mockPlaylistService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

package video

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
	"vidtube/internal/query"
)

// MockVideoRepository is a mock of VideoRepository interface.
type MockVideoRepository struct {
	ctrl     *gomock.Controller
	recorder *MockVideoRepositoryMockRecorder
}

// MockVideoRepositoryMockRecorder is the mock recorder for MockVideoRepository.
type MockVideoRepositoryMockRecorder struct {
	mock *MockVideoRepository
}

// NewMockVideoRepository creates a new mock instance.
func NewMockVideoRepository(ctrl *gomock.Controller) *MockVideoRepository {
	mock := &MockVideoRepository{ctrl: ctrl}
	mock.recorder = &MockVideoRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVideoRepository) EXPECT() *MockVideoRepositoryMockRecorder {
	return m.recorder
}

func (m *MockVideoRepository) Create(ctx context.Context, video *dbmongo.Video) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, video)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockVideoRepositoryMockRecorder) Create(ctx, video interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockVideoRepository)(nil).Create), ctx, video)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.Video)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVideoRepositoryMockRecorder) FindByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockVideoRepository)(nil).FindByID), ctx, id)
}

func (m *MockVideoRepository) FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindRow", ctx, id)
	ret0, _ := ret[0].(*dbmongo.VideoRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVideoRepositoryMockRecorder) FindRow(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindRow", reflect.TypeOf((*MockVideoRepository)(nil).FindRow), ctx, id)
}

func (m *MockVideoRepository) List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, listing)
	ret0, _ := ret[0].(*pagination.Page[dbmongo.VideoRow])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVideoRepositoryMockRecorder) List(ctx, listing interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockVideoRepository)(nil).List), ctx, listing)
}

func (m *MockVideoRepository) Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*dbmongo.Video, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, patch)
	ret0, _ := ret[0].(*dbmongo.Video)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVideoRepositoryMockRecorder) Update(ctx, id, patch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockVideoRepository)(nil).Update), ctx, id, patch)
}

func (m *MockVideoRepository) TogglePublish(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TogglePublish", ctx, id)
	ret0, _ := ret[0].(*dbmongo.Video)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVideoRepositoryMockRecorder) TogglePublish(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TogglePublish", reflect.TypeOf((*MockVideoRepository)(nil).TogglePublish), ctx, id)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, id, viewer primitive.ObjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordView", ctx, id, viewer)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockVideoRepositoryMockRecorder) RecordView(ctx, id, viewer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordView", reflect.TypeOf((*MockVideoRepository)(nil).RecordView), ctx, id, viewer)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockVideoRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockVideoRepository)(nil).Delete), ctx, id)
}

// mockVideoService is a testify mock of VideoService for handler tests.
type mockVideoService struct {
	mock.Mock
}

func (m *mockVideoService) List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	args := m.Called(ctx, listing)
	p, _ := args.Get(0).(*pagination.Page[dbmongo.VideoRow])
	return p, args.Error(1)
}

func (m *mockVideoService) Publish(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*dbmongo.Video, error) {
	args := m.Called(ctx, owner, in)
	v, _ := args.Get(0).(*dbmongo.Video)
	return v, args.Error(1)
}

func (m *mockVideoService) Get(ctx context.Context, id, viewer primitive.ObjectID) (*dbmongo.VideoRow, error) {
	args := m.Called(ctx, id, viewer)
	v, _ := args.Get(0).(*dbmongo.VideoRow)
	return v, args.Error(1)
}

func (m *mockVideoService) Update(ctx context.Context, id, owner primitive.ObjectID, in UpdateInput) (*dbmongo.Video, error) {
	args := m.Called(ctx, id, owner, in)
	v, _ := args.Get(0).(*dbmongo.Video)
	return v, args.Error(1)
}

func (m *mockVideoService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *mockVideoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error) {
	args := m.Called(ctx, id, owner)
	v, _ := args.Get(0).(*dbmongo.Video)
	return v, args.Error(1)
}

// fakeStorage stores by filename and fails for names listed in failOn.
type fakeStorage struct {
	stored  []string
	deleted []string
	failOn  string
}

func (f *fakeStorage) Store(_ context.Context, file *common.LocalFile) (string, error) {
	if f.failOn != "" && strings.Contains(file.Filename, f.failOn) {
		return "", errors.New("storage unavailable")
	}
	url := "https://cdn.test/" + file.Filename
	f.stored = append(f.stored, url)
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeProber struct {
	seconds float64
	err     error
	probed  []string
}

func (f *fakeProber) Duration(_ context.Context, path string) (float64, error) {
	f.probed = append(f.probed, path)
	return f.seconds, f.err
}

func (m *mockVideoService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.Called(ctx, id, owner).Error(0)
}

package user

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

func (m *MockUserRepository) Create(ctx context.Context, user *dbmongo.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUserRepositoryMockRecorder) Create(ctx, user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepository)(nil).Create), ctx, user)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) FindByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockUserRepository)(nil).FindByID), ctx, id)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, username, email string) (*dbmongo.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByLogin", ctx, username, email)
	ret0, _ := ret[0].(*dbmongo.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) FindByLogin(ctx, username, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByLogin", reflect.TypeOf((*MockUserRepository)(nil).FindByLogin), ctx, username, email)
}

func (m *MockUserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, username, email)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) Exists(ctx, username, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockUserRepository)(nil).Exists), ctx, username, email)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetRefreshToken", ctx, id, token)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUserRepositoryMockRecorder) SetRefreshToken(ctx, id, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetRefreshToken", reflect.TypeOf((*MockUserRepository)(nil).SetRefreshToken), ctx, id, token)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePassword", ctx, id, hash)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUserRepositoryMockRecorder) UpdatePassword(ctx, id, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePassword", reflect.TypeOf((*MockUserRepository)(nil).UpdatePassword), ctx, id, hash)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id primitive.ObjectID, fullname, email string) (*dbmongo.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAccount", ctx, id, fullname, email)
	ret0, _ := ret[0].(*dbmongo.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) UpdateAccount(ctx, id, fullname, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAccount", reflect.TypeOf((*MockUserRepository)(nil).UpdateAccount), ctx, id, fullname, email)
}

func (m *MockUserRepository) ReplaceImage(ctx context.Context, id primitive.ObjectID, field ImageField, url string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceImage", ctx, id, field, url)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) ReplaceImage(ctx, id, field, url interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceImage", reflect.TypeOf((*MockUserRepository)(nil).ReplaceImage), ctx, id, field, url)
}

func (m *MockUserRepository) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChannelProfile", ctx, username, viewer)
	ret0, _ := ret[0].(*dbmongo.ChannelProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) ChannelProfile(ctx, username, viewer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChannelProfile", reflect.TypeOf((*MockUserRepository)(nil).ChannelProfile), ctx, username, viewer)
}

func (m *MockUserRepository) WatchHistory(ctx context.Context, id primitive.ObjectID) ([]dbmongo.VideoRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WatchHistory", ctx, id)
	ret0, _ := ret[0].([]dbmongo.VideoRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepositoryMockRecorder) WatchHistory(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WatchHistory", reflect.TypeOf((*MockUserRepository)(nil).WatchHistory), ctx, id)
}

// mockUserService is a testify mock of UserService for handler tests.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*dbmongo.User)
	return u, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, username, email, password string) (*dbmongo.User, *Tokens, error) {
	args := m.Called(ctx, username, email, password)
	u, _ := args.Get(0).(*dbmongo.User)
	t, _ := args.Get(1).(*Tokens)
	return u, t, args.Error(2)
}

func (m *mockUserService) Logout(ctx context.Context, userID primitive.ObjectID, accessToken string) error {
	return m.Called(ctx, userID, accessToken).Error(0)
}

func (m *mockUserService) RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error) {
	args := m.Called(ctx, refreshToken)
	t, _ := args.Get(0).(*Tokens)
	return t, args.Error(1)
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	return m.Called(ctx, userID, oldPassword, newPassword).Error(0)
}

func (m *mockUserService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*dbmongo.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullname, email string) (*dbmongo.User, error) {
	args := m.Called(ctx, userID, fullname, email)
	u, _ := args.Get(0).(*dbmongo.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateImage(ctx context.Context, userID primitive.ObjectID, field ImageField, file *common.LocalFile) (*dbmongo.User, error) {
	args := m.Called(ctx, userID, field, file)
	u, _ := args.Get(0).(*dbmongo.User)
	return u, args.Error(1)
}

func (m *mockUserService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	args := m.Called(ctx, username, viewer)
	p, _ := args.Get(0).(*dbmongo.ChannelProfile)
	return p, args.Error(1)
}

func (m *mockUserService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]dbmongo.VideoRow, error) {
	args := m.Called(ctx, userID)
	h, _ := args.Get(0).([]dbmongo.VideoRow)
	return h, args.Error(1)
}

// fakeStorage records stored and deleted URLs.
type fakeStorage struct {
	stored   []string
	deleted  []string
	storeErr error
}

func (f *fakeStorage) Store(_ context.Context, file *common.LocalFile) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	url := "https://cdn.test/" + file.Filename
	f.stored = append(f.stored, url)
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

// fakeDenylist remembers revoked tokens.
type fakeDenylist struct {
	revoked map[string]bool
}

func (f *fakeDenylist) Revoke(_ context.Context, token string, _ time.Duration) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

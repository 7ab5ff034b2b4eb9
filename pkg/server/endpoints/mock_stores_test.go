package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(newUser store.NewUser) (*model.User, error) {
	args := m.Called(newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSoftwareStore implements store.SoftwareStore for testing using testify/mock
type MockSoftwareStore struct {
	mock.Mock
}

func NewMockSoftwareStore() *MockSoftwareStore {
	return &MockSoftwareStore{}
}

func (m *MockSoftwareStore) ListSoftware() ([]model.Software, error) {
	args := m.Called()
	return args.Get(0).([]model.Software), args.Error(1)
}

func (m *MockSoftwareStore) FetchSoftware(id uint) (*model.Software, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Software), args.Error(1)
}

func (m *MockSoftwareStore) CreateSoftware(software *model.Software) error {
	args := m.Called(software)
	return args.Error(0)
}

func (m *MockSoftwareStore) UpdateSoftware(id uint, patch store.SoftwarePatch) (*model.Software, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Software), args.Error(1)
}

// MockRequestsStore implements store.RequestsStore for testing using testify/mock
type MockRequestsStore struct {
	mock.Mock
}

func NewMockRequestsStore() *MockRequestsStore {
	return &MockRequestsStore{}
}

func (m *MockRequestsStore) CreateRequest(newRequest store.NewRequest) (*model.AccessRequest, error) {
	args := m.Called(newRequest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessRequest), args.Error(1)
}

func (m *MockRequestsStore) ListRequests() ([]model.AccessRequest, error) {
	args := m.Called()
	return args.Get(0).([]model.AccessRequest), args.Error(1)
}

func (m *MockRequestsStore) ListRequestsByUser(userID uint) ([]model.AccessRequest, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.AccessRequest), args.Error(1)
}

func (m *MockRequestsStore) FetchRequest(id uint) (*model.AccessRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessRequest), args.Error(1)
}

func (m *MockRequestsStore) UpdateStatus(id uint, status model.Status) (*model.AccessRequest, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessRequest), args.Error(1)
}

func (m *MockRequestsStore) HasApprovedWrite(userID, softwareID uint) (bool, error) {
	args := m.Called(userID, softwareID)
	return args.Bool(0), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

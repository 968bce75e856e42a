package mocks

import (
	"swasthprameh/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) SetOnboardingCompleted(userID uint, completed bool) error {
	args := m.Called(userID, completed)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockOnboardingRepository
type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) Upsert(onboarding *models.Onboarding) error {
	args := m.Called(onboarding)
	return args.Error(0)
}

func (m *MockOnboardingRepository) FindByUserID(userID uint) (*models.Onboarding, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Onboarding), args.Error(1)
}

// Shared MockPlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) SavePlan(plan *models.Plan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetPlanByID(id uint) (*models.Plan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *MockPlanRepository) GetPlansByUserID(userID uint) ([]models.Plan, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *MockPlanRepository) GetLatestPlanByUserID(userID uint) (*models.Plan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

// Shared MockDiagnosisRepository
type MockDiagnosisRepository struct {
	mock.Mock
}

func (m *MockDiagnosisRepository) SaveDiagnosis(diagnosis *models.Diagnosis) error {
	args := m.Called(diagnosis)
	return args.Error(0)
}

func (m *MockDiagnosisRepository) GetDiagnosisByID(id uint) (*models.Diagnosis, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Diagnosis), args.Error(1)
}

func (m *MockDiagnosisRepository) GetLatestDiagnosisByUserID(userID uint) (*models.Diagnosis, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Diagnosis), args.Error(1)
}

// Shared MockFeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(feedback *models.Feedback) error {
	args := m.Called(feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindAllByUserID(userID uint) ([]models.Feedback, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ExistsForUserAndPlan(userID uint, planID *uint) (bool, error) {
	args := m.Called(userID, planID)
	return args.Bool(0), args.Error(1)
}

// Shared MockChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Append(message *models.ChatMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockChatRepository) FindByUserID(userID uint, limit int) ([]models.ChatMessage, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) MarkRead(userID uint, senderType string) error {
	args := m.Called(userID, senderType)
	return args.Error(0)
}

func (m *MockChatRepository) CountUnread(userID uint, senderType string) (int64, error) {
	args := m.Called(userID, senderType)
	return args.Get(0).(int64), args.Error(1)
}

package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/pagination"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func NewMockProjectsStore() *MockProjectsStore {
	return &MockProjectsStore{}
}

func (m *MockProjectsStore) ListProjects(filter store.ProjectFilter, after *pagination.Cursor, limit int) ([]model.Project, error) {
	args := m.Called(filter, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) CountProjects(filter store.ProjectFilter) (int, error) {
	args := m.Called(filter)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectsStore) FetchProject(id string) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) CreateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) UpdateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) DeleteProject(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSkillsStore implements store.SkillsStore for testing using testify/mock
type MockSkillsStore struct {
	mock.Mock
}

func NewMockSkillsStore() *MockSkillsStore {
	return &MockSkillsStore{}
}

func (m *MockSkillsStore) ListSkills() ([]model.Skill, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillsStore) FetchSkill(id string) (*model.Skill, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillsStore) CreateSkill(skill *model.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillsStore) UpdateSkill(skill *model.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillsStore) DeleteSkill(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockExperiencesStore implements store.ExperiencesStore for testing using testify/mock
type MockExperiencesStore struct {
	mock.Mock
}

func NewMockExperiencesStore() *MockExperiencesStore {
	return &MockExperiencesStore{}
}

func (m *MockExperiencesStore) ListExperiences() ([]model.Experience, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Experience), args.Error(1)
}

func (m *MockExperiencesStore) FetchExperience(id string) (*model.Experience, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Experience), args.Error(1)
}

func (m *MockExperiencesStore) CreateExperience(experience *model.Experience) error {
	args := m.Called(experience)
	return args.Error(0)
}

func (m *MockExperiencesStore) UpdateExperience(experience *model.Experience) error {
	args := m.Called(experience)
	return args.Error(0)
}

func (m *MockExperiencesStore) DeleteExperience(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProfileStore implements store.ProfileStore for testing using testify/mock
type MockProfileStore struct {
	mock.Mock
}

func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{}
}

func (m *MockProfileStore) FetchProfile() (*model.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileStore) SaveProfile(profile *model.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) FetchUserByLogin(login string) (*model.User, error) {
	args := m.Called(login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) UpdateUserPassword(username string, passwordHash string) error {
	args := m.Called(username, passwordHash)
	return args.Error(0)
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

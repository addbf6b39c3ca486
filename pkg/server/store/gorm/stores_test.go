package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/db"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/pagination"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

func testDB(t *testing.T) *gormlib.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	conn, err := db.Connect(db.Config{URL: dbURL})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Project{},
		&model.Skill{},
		&model.Experience{},
	))

	cleanup := func() {
		conn.Exec("DELETE FROM projects")
		conn.Exec("DELETE FROM skills")
		conn.Exec("DELETE FROM experiences")
		conn.Exec("DELETE FROM profiles")
		conn.Exec("DELETE FROM users")
	}
	cleanup()
	t.Cleanup(cleanup)

	return conn
}

func TestProjectsStorePagination(t *testing.T) {
	conn := testDB(t)
	projects := NewProjectsStore(conn)

	day := func(month int) time.Time {
		return time.Date(2025, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}
	for month := 1; month <= 3; month++ {
		require.NoError(t, projects.CreateProject(&model.Project{
			Title:       "Project",
			Description: "a description long enough",
			StartDate:   day(month),
			Status:      model.ProjectStatusCompleted,
		}))
	}

	page, err := projects.ListProjects(store.ProjectFilter{}, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].StartDate.Equal(day(3)))
	assert.True(t, page[1].StartDate.Equal(day(2)))

	after := &pagination.Cursor{StartDate: page[1].StartDate, ID: page[1].ID}
	rest, err := projects.ListProjects(store.ProjectFilter{}, after, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.True(t, rest[0].StartDate.Equal(day(1)))

	count, err := projects.CountProjects(store.ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Limit 0 lifts the cap; the portfolio aggregate relies on this.
	all, err := projects.ListProjects(store.ProjectFilter{}, nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProjectsStoreTieBreaksOnID(t *testing.T) {
	conn := testDB(t)
	projects := NewProjectsStore(conn)

	sameDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{"bbb", "aaa", "ccc"}
	for _, id := range ids {
		require.NoError(t, projects.CreateProject(&model.Project{
			ID:          id,
			Title:       "Tied",
			Description: "a description long enough",
			StartDate:   sameDay,
			Status:      model.ProjectStatusCompleted,
		}))
	}

	first, err := projects.ListProjects(store.ProjectFilter{}, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "aaa", first[0].ID)
	assert.Equal(t, "bbb", first[1].ID)

	after := &pagination.Cursor{StartDate: sameDay, ID: "bbb"}
	rest, err := projects.ListProjects(store.ProjectFilter{}, after, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "ccc", rest[0].ID)
}

func TestProjectsStoreFilters(t *testing.T) {
	conn := testDB(t)
	projects := NewProjectsStore(conn)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, projects.CreateProject(&model.Project{
		Title:        "API",
		Description:  "a description long enough",
		StartDate:    start,
		Status:       model.ProjectStatusCompleted,
		Tags:         []string{"go", "api"},
		Technologies: []string{"postgres"},
	}))
	require.NoError(t, projects.CreateProject(&model.Project{
		Title:        "Site",
		Description:  "a description long enough",
		StartDate:    start.AddDate(0, 1, 0),
		Status:       model.ProjectStatusInProgress,
		Tags:         []string{"web"},
		Technologies: []string{"react"},
	}))

	// Overlap: one shared tag is enough.
	byTag, err := projects.ListProjects(store.ProjectFilter{Tags: []string{"api", "unrelated"}}, nil, 10)
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "API", byTag[0].Title)

	byStatus, err := projects.ListProjects(store.ProjectFilter{Status: model.ProjectStatusInProgress}, nil, 10)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Site", byStatus[0].Title)

	count, err := projects.CountProjects(store.ProjectFilter{Technologies: []string{"react"}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProjectsStoreNotFound(t *testing.T) {
	conn := testDB(t)
	projects := NewProjectsStore(conn)

	_, err := projects.FetchProject("no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = projects.UpdateProject(&model.Project{ID: "no-such-id", Title: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = projects.DeleteProject("no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectsStoreUpdatePreservesCreatedAt(t *testing.T) {
	conn := testDB(t)
	projects := NewProjectsStore(conn)

	project := &model.Project{
		Title:       "Before",
		Description: "a description long enough",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, projects.CreateProject(project))

	updated := *project
	updated.Title = "After"
	require.NoError(t, projects.UpdateProject(&updated))

	fetched, err := projects.FetchProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", fetched.Title)
	assert.WithinDuration(t, project.CreatedAt, fetched.CreatedAt, time.Second)
}

func TestSkillsStoreOrdering(t *testing.T) {
	conn := testDB(t)
	skills := NewSkillsStore(conn)

	seed := []model.Skill{
		{Name: "Go", Level: model.SkillLevelExpert, Category: "backend"},
		{Name: "Postgres", Level: model.SkillLevelAdvanced, Category: "database"},
		{Name: "Rust", Level: model.SkillLevelBeginner, Category: "backend"},
		{Name: "Node.js", Level: model.SkillLevelExpert, Category: "backend"},
	}
	for i := range seed {
		require.NoError(t, skills.CreateSkill(&seed[i]))
	}

	listed, err := skills.ListSkills()
	require.NoError(t, err)
	require.Len(t, listed, 4)

	// backend before database, level rank inside a category, name as tiebreak
	assert.Equal(t, "Go", listed[0].Name)
	assert.Equal(t, "Node.js", listed[1].Name)
	assert.Equal(t, "Rust", listed[2].Name)
	assert.Equal(t, "Postgres", listed[3].Name)
}

func TestProfileStoreSingleton(t *testing.T) {
	conn := testDB(t)
	profiles := NewProfileStore(conn)

	_, err := profiles.FetchProfile()
	assert.ErrorIs(t, err, store.ErrNotFound)

	profile := &model.Profile{
		FirstName: "Keltoum",
		LastName:  "Malouki",
		Headline:  "Software Engineer",
		Biography: "a biography long enough to pass validation",
		Email:     "keltoum@example.com",
	}
	require.NoError(t, profiles.SaveProfile(profile))

	fetched, err := profiles.FetchProfile()
	require.NoError(t, err)
	assert.Equal(t, "Keltoum", fetched.FirstName)

	fetched.Headline = "Backend Engineer"
	require.NoError(t, profiles.SaveProfile(fetched))

	again, err := profiles.FetchProfile()
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, "Backend Engineer", again.Headline)
}

func TestUsersStore(t *testing.T) {
	conn := testDB(t)
	users := NewUsersStore(conn)

	user := &model.User{
		Username:     "keltoum",
		Email:        "keltoum@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         "admin",
	}
	require.NoError(t, users.CreateUser(user))

	byUsername, err := users.FetchUserByLogin("keltoum")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := users.FetchUserByLogin("keltoum@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = users.FetchUserByLogin("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, users.UpdateUserPassword("keltoum", "$2a$10$vutsrqponmlkjihgfedcba"))
	updated, err := users.FetchUserByLogin("keltoum")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$vutsrqponmlkjihgfedcba", updated.PasswordHash)

	assert.ErrorIs(t, users.UpdateUserPassword("nobody", "hash"), store.ErrNotFound)
}

func TestExperiencesStore(t *testing.T) {
	conn := testDB(t)
	experiences := NewExperiencesStore(conn)

	older := &model.Experience{
		Position:    "Intern",
		Company:     "Startup",
		Description: "a description long enough",
		StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &model.Experience{
		Position:    "Engineer",
		Company:     "Acme",
		Description: "a description long enough",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Current:     true,
	}
	require.NoError(t, experiences.CreateExperience(older))
	require.NoError(t, experiences.CreateExperience(newer))

	listed, err := experiences.ListExperiences()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Engineer", listed[0].Position)
	assert.Equal(t, "Intern", listed[1].Position)

	require.NoError(t, experiences.DeleteExperience(older.ID))
	_, err = experiences.FetchExperience(older.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHealthStore(t *testing.T) {
	conn := testDB(t)
	health := NewHealthStore(conn)

	assert.NoError(t, health.CheckConnectivity())
}

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/model"
)

func validProjectInput() *ProjectInput {
	return &ProjectInput{
		Title:        "Careflow",
		Description:  "A REST API for managing appointments",
		Technologies: []string{"Go", "PostgreSQL"},
		DemoURL:      "https://careflow.example.com",
		StartDate:    "2025-03-01",
		Status:       model.ProjectStatusCompleted,
		Tags:         []string{"backend"},
	}
}

func TestProjectValid(t *testing.T) {
	assert.NoError(t, Project(validProjectInput()))
}

func TestProjectCollectsAllViolations(t *testing.T) {
	in := &ProjectInput{
		Title:       "ab",
		Description: "short",
		DemoURL:     "not-a-url",
		StartDate:   "",
		Status:      "abandoned",
	}

	err := Project(in)
	require.Error(t, err)

	apiErr := api.From(err)
	assert.Equal(t, api.CodeBadUserInput, apiErr.Extensions.Code)

	// One message per violated constraint: title, description,
	// technologies, demoUrl, startDate, status.
	assert.Len(t, apiErr.Extensions.Fields, 6)
	assert.Contains(t, apiErr.Extensions.Fields, "title must be at least 3 characters")
	assert.Contains(t, apiErr.Extensions.Fields, "technologies must contain at least 1 item(s)")
	assert.Contains(t, apiErr.Extensions.Fields, "startDate is required")
}

func TestMinLengthCountsCharacters(t *testing.T) {
	// "éé" is four bytes but two characters; it must still fail min 3.
	in := validProjectInput()
	in.Title = "éé"
	err := Project(in)
	require.Error(t, err)
	assert.Contains(t, api.From(err).Extensions.Fields, "title must be at least 3 characters")

	// Three multibyte characters satisfy min 3.
	in.Title = "ééé"
	assert.NoError(t, Project(in))
}

func TestProjectEmptyURLAllowed(t *testing.T) {
	in := validProjectInput()
	in.DemoURL = ""
	in.GitHubURL = ""
	assert.NoError(t, Project(in))
}

func TestProjectTrimsWhitespace(t *testing.T) {
	in := validProjectInput()
	in.Title = "  Careflow  "
	require.NoError(t, Project(in))
	assert.Equal(t, "Careflow", in.Title)
}

func TestProjectDateFormats(t *testing.T) {
	in := validProjectInput()
	in.StartDate = "2025-03-01T00:00:00Z"
	assert.NoError(t, Project(in))

	in.StartDate = "March 1st"
	assert.Error(t, Project(in))
}

func TestSkillEnums(t *testing.T) {
	in := &SkillInput{Name: "Go", Level: "expert", Category: "backend"}
	assert.NoError(t, Skill(in))

	in = &SkillInput{Name: "Go", Level: "wizard", Category: "backend"}
	err := Skill(in)
	require.Error(t, err)
	assert.Contains(t, api.From(err).Extensions.Fields[0], "level must be one of")

	in = &SkillInput{Name: "G", Level: "expert", Category: "cooking"}
	err = Skill(in)
	require.Error(t, err)
	assert.Len(t, api.From(err).Extensions.Fields, 2)
}

func TestExperience(t *testing.T) {
	in := &ExperienceInput{
		Position:    "Backend Developer",
		Company:     "Acme",
		Description: "Built the billing pipeline",
		StartDate:   "2024-01-15",
		Current:     true,
	}
	assert.NoError(t, Experience(in))

	in.Company = "A"
	in.EndDate = "soon"
	err := Experience(in)
	require.Error(t, err)
	assert.Len(t, api.From(err).Extensions.Fields, 2)
}

func TestProfilePatchSemantics(t *testing.T) {
	// An empty patch is valid: every field is optional.
	assert.NoError(t, Profile(&ProfileInput{}))

	bad := "x"
	badURL := "ftp://example.com"
	err := Profile(&ProfileInput{FirstName: &bad, LinkedIn: &badURL})
	require.Error(t, err)
	assert.Len(t, api.From(err).Extensions.Fields, 2)

	empty := ""
	assert.NoError(t, Profile(&ProfileInput{Twitter: &empty}))
}

func TestProfileApplyMergesWithoutMutating(t *testing.T) {
	current := model.Profile{
		ID:        "p1",
		FirstName: "Keltoum",
		LastName:  "Malouki",
		Headline:  "Full Stack Developer",
		Biography: "Building web applications.",
		Email:     "old@example.com",
	}

	email := "new@example.com"
	headline := "Backend Developer"
	merged := (&ProfileInput{Email: &email, Headline: &headline}).Apply(current)

	assert.Equal(t, "new@example.com", merged.Email)
	assert.Equal(t, "Backend Developer", merged.Headline)
	assert.Equal(t, "Keltoum", merged.FirstName)

	// The original record is untouched.
	assert.Equal(t, "old@example.com", current.Email)
	assert.Equal(t, "Full Stack Developer", current.Headline)
}

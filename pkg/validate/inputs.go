package validate

import (
	"strings"

	"github.com/keltoummalouki/talenthub/pkg/model"
)

// ProjectInput is the mutation payload for creating or replacing a project.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	GitHubURL    string   `json:"githubUrl"`
	Images       []string `json:"images"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags"`
}

// Project normalizes and validates a project payload. Constraints:
// title min 3, description min 10, technologies min 1, optional http(s)
// demo/github URLs (empty allowed), required start date, optional end
// date, optional status from the closed set.
func Project(in *ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	var v violations
	v.minLen("title", in.Title, 3)
	v.minLen("description", in.Description, 10)
	v.minItems("technologies", in.Technologies, 1)
	v.optionalURL("demoUrl", in.DemoURL)
	v.optionalURL("githubUrl", in.GitHubURL)
	v.date("startDate", in.StartDate)
	v.optionalDate("endDate", in.EndDate)
	v.optionalEnum("status", in.Status, model.ProjectStatuses)
	return v.err()
}

// SkillInput is the mutation payload for creating or replacing a skill.
type SkillInput struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// Skill normalizes and validates a skill payload. Constraints: name min 2,
// level and category from their closed sets.
func Skill(in *SkillInput) error {
	in.Name = strings.TrimSpace(in.Name)

	var v violations
	v.minLen("name", in.Name, 2)
	v.enum("level", in.Level, model.SkillLevels)
	v.enum("category", in.Category, model.SkillCategories)
	return v.err()
}

// ExperienceInput is the mutation payload for creating or replacing an
// experience entry.
type ExperienceInput struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
}

// Experience normalizes and validates an experience payload. Constraints:
// position min 3, company min 2, description min 10, required start date,
// optional end date.
func Experience(in *ExperienceInput) error {
	in.Position = strings.TrimSpace(in.Position)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)

	var v violations
	v.minLen("position", in.Position, 3)
	v.minLen("company", in.Company, 2)
	v.minLen("description", in.Description, 10)
	v.date("startDate", in.StartDate)
	v.optionalDate("endDate", in.EndDate)
	return v.err()
}

// ProfileInput is the mutation payload for updating the profile. Every
// field is optional; nil means "leave the current value alone", which is
// why the fields are pointers.
type ProfileInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Headline  *string `json:"headline"`
	Biography *string `json:"biography"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Twitter   *string `json:"twitter"`
	Website   *string `json:"website"`
	Photo     *string `json:"photo"`
}

// Profile validates a profile patch. Supplied fields must satisfy their
// constraints; absent fields contribute nothing.
func Profile(in *ProfileInput) error {
	var v violations
	v.optionalMinLen("firstName", in.FirstName, 2)
	v.optionalMinLen("lastName", in.LastName, 2)
	v.optionalMinLen("headline", in.Headline, 3)
	v.optionalMinLen("biography", in.Biography, 10)
	v.optionalEmail("email", in.Email)
	if in.LinkedIn != nil {
		v.optionalURL("linkedin", *in.LinkedIn)
	}
	if in.GitHub != nil {
		v.optionalURL("github", *in.GitHub)
	}
	if in.Twitter != nil {
		v.optionalURL("twitter", *in.Twitter)
	}
	if in.Website != nil {
		v.optionalURL("website", *in.Website)
	}
	return v.err()
}

// Apply merges the patch into a copy of current and returns the merged
// record. The original is never mutated in place, so a failed persist
// cannot leave a half-updated profile behind.
func (in *ProfileInput) Apply(current model.Profile) model.Profile {
	merged := current
	if in.FirstName != nil {
		merged.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		merged.LastName = *in.LastName
	}
	if in.Headline != nil {
		merged.Headline = *in.Headline
	}
	if in.Biography != nil {
		merged.Biography = *in.Biography
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Phone != nil {
		merged.Phone = *in.Phone
	}
	if in.Address != nil {
		merged.Address = *in.Address
	}
	if in.LinkedIn != nil {
		merged.LinkedIn = *in.LinkedIn
	}
	if in.GitHub != nil {
		merged.GitHub = *in.GitHub
	}
	if in.Twitter != nil {
		merged.Twitter = *in.Twitter
	}
	if in.Website != nil {
		merged.Website = *in.Website
	}
	if in.Photo != nil {
		merged.Photo = *in.Photo
	}
	return merged
}

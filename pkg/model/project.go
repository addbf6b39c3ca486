package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Project statuses form a closed set; mutation input is checked against
// them by the validation layer.
const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusPaused     = "paused"
)

// ProjectStatuses lists the valid project status values.
var ProjectStatuses = []string{
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusPaused,
}

// Project is a portfolio entry. The collection's fixed sort order is
// StartDate descending, ID ascending as tiebreak; cursors for paginated
// listings encode exactly that sort position.
type Project struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`
	DemoURL      string         `json:"demoUrl,omitempty"`
	GitHubURL    string         `json:"githubUrl,omitempty"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Status       string         `json:"status"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (p Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusInProgress
	}
	return nil
}

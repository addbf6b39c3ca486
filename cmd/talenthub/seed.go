package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/db"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	gormstore "github.com/keltoummalouki/talenthub/pkg/server/store/gorm"
	"github.com/keltoummalouki/talenthub/pkg/validate"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load portfolio content from a seed file",
	Long: `Load portfolio content from a YAML seed file.

Existing records are matched by their natural key (project title, skill
name, experience position and company) and updated in place; everything
else is created. Without --file a small sample data set is loaded.

With --watch the command keeps running and re-applies the seed file
whenever it changes on disk.

Example:
  talenthub seed --file content.yml --watch`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		watch, _ := cmd.Flags().GetBool("watch")

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		if err := applySeed(database, file); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed: %v\n", err)
			os.Exit(1)
		}
		log.Println("Seed applied")

		if !watch {
			return
		}
		if file == "" {
			fmt.Fprintln(os.Stderr, "--watch requires --file")
			os.Exit(1)
		}
		if err := watchSeedFile(database, file); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", file, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("file", "f", "", "path to the YAML seed file")
	seedCmd.Flags().BoolP("watch", "w", false, "re-apply the seed file on change")
}

// watchSeedFile blocks, re-applying the seed file on every write. Editors
// that replace the file on save remove the watched inode, so the path is
// re-added after a rename or remove event.
func watchSeedFile(database *gorm.DB, file string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(file); err != nil {
		return err
	}
	log.Printf("Watching %s for changes", file)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				// Wait for the replacement file to land before re-adding.
				time.Sleep(100 * time.Millisecond)
				if err := watcher.Add(file); err != nil {
					return err
				}
			} else if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := applySeed(database, file); err != nil {
				log.Printf("Failed to re-apply seed: %v", err)
				continue
			}
			log.Println("Seed re-applied")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)
		}
	}
}

type seedProfile struct {
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Headline  string `yaml:"headline"`
	Biography string `yaml:"biography"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Address   string `yaml:"address"`
	LinkedIn  string `yaml:"linkedin"`
	GitHub    string `yaml:"github"`
	Twitter   string `yaml:"twitter"`
	Website   string `yaml:"website"`
	Photo     string `yaml:"photo"`
}

type seedProject struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	DemoURL      string   `yaml:"demoUrl"`
	GitHubURL    string   `yaml:"githubUrl"`
	Images       []string `yaml:"images"`
	StartDate    string   `yaml:"startDate"`
	EndDate      string   `yaml:"endDate"`
	Status       string   `yaml:"status"`
	Tags         []string `yaml:"tags"`
}

type seedSkill struct {
	Name     string `yaml:"name"`
	Level    string `yaml:"level"`
	Category string `yaml:"category"`
	Icon     string `yaml:"icon"`
}

type seedExperience struct {
	Position    string   `yaml:"position"`
	Company     string   `yaml:"company"`
	Description string   `yaml:"description"`
	StartDate   string   `yaml:"startDate"`
	EndDate     string   `yaml:"endDate"`
	Current     bool     `yaml:"current"`
	Skills      []string `yaml:"skills"`
	Location    string   `yaml:"location"`
}

type seedData struct {
	Profile     *seedProfile     `yaml:"profile"`
	Projects    []seedProject    `yaml:"projects"`
	Skills      []seedSkill      `yaml:"skills"`
	Experiences []seedExperience `yaml:"experiences"`
}

const sampleSeed = `
profile:
  firstName: Keltoum
  lastName: Malouki
  headline: Full-stack developer
  biography: |
    I build web applications, mostly backends in Go.
  email: keltoum@example.com
  github: https://github.com/keltoummalouki
projects:
  - title: TalentHub
    description: Portfolio CMS with a token-authenticated API.
    technologies: [Go, PostgreSQL]
    startDate: "2025-01-06"
    status: in_progress
    tags: [backend, api]
skills:
  - name: Go
    level: advanced
    category: backend
  - name: PostgreSQL
    level: intermediate
    category: database
experiences:
  - position: Backend Developer
    company: Freelance
    description: API design and implementation for small businesses.
    startDate: "2024-03-01"
    current: true
    skills: [Go, PostgreSQL]
`

func loadSeed(file string) (*seedData, error) {
	raw := []byte(sampleSeed)
	if file != "" {
		var err error
		raw, err = os.ReadFile(file)
		if err != nil {
			return nil, err
		}
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

func applySeed(database *gorm.DB, file string) error {
	data, err := loadSeed(file)
	if err != nil {
		return err
	}

	if data.Profile != nil {
		if err := seedProfileRecord(database, data.Profile); err != nil {
			return err
		}
	}
	if err := seedProjects(database, data.Projects); err != nil {
		return err
	}
	if err := seedSkills(database, data.Skills); err != nil {
		return err
	}
	return seedExperiences(database, data.Experiences)
}

func seedProfileRecord(database *gorm.DB, in *seedProfile) error {
	profiles := gormstore.NewProfileStore(database)

	current, err := profiles.FetchProfile()
	if err != nil && err != store.ErrNotFound {
		return err
	}
	if current == nil {
		current = &model.Profile{}
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Headline = in.Headline
	current.Biography = in.Biography
	current.Email = in.Email
	current.Phone = in.Phone
	current.Address = in.Address
	current.LinkedIn = in.LinkedIn
	current.GitHub = in.GitHub
	current.Twitter = in.Twitter
	current.Website = in.Website
	current.Photo = in.Photo

	return profiles.SaveProfile(current)
}

func seedProjects(database *gorm.DB, in []seedProject) error {
	if len(in) == 0 {
		return nil
	}
	projects := gormstore.NewProjectsStore(database)

	existing, err := projects.ListProjects(store.ProjectFilter{}, nil, 0)
	if err != nil {
		return err
	}
	byTitle := make(map[string]model.Project, len(existing))
	for _, p := range existing {
		byTitle[p.Title] = p
	}

	for _, sp := range in {
		start, err := validate.ParseDate(sp.StartDate)
		if err != nil {
			return fmt.Errorf("project %q: bad startDate: %w", sp.Title, err)
		}
		var end *time.Time
		if sp.EndDate != "" {
			t, err := validate.ParseDate(sp.EndDate)
			if err != nil {
				return fmt.Errorf("project %q: bad endDate: %w", sp.Title, err)
			}
			end = &t
		}

		record := model.Project{
			Title:        sp.Title,
			Description:  sp.Description,
			Technologies: sp.Technologies,
			DemoURL:      sp.DemoURL,
			GitHubURL:    sp.GitHubURL,
			Images:       sp.Images,
			StartDate:    start,
			EndDate:      end,
			Status:       sp.Status,
			Tags:         sp.Tags,
		}

		if prev, ok := byTitle[sp.Title]; ok {
			record.ID = prev.ID
			if err := projects.UpdateProject(&record); err != nil {
				return err
			}
			continue
		}
		if err := projects.CreateProject(&record); err != nil {
			return err
		}
	}
	return nil
}

func seedSkills(database *gorm.DB, in []seedSkill) error {
	if len(in) == 0 {
		return nil
	}
	skills := gormstore.NewSkillsStore(database)

	existing, err := skills.ListSkills()
	if err != nil {
		return err
	}
	byName := make(map[string]model.Skill, len(existing))
	for _, s := range existing {
		byName[s.Name] = s
	}

	for _, ss := range in {
		record := model.Skill{
			Name:     ss.Name,
			Level:    ss.Level,
			Category: ss.Category,
			Icon:     ss.Icon,
		}
		if prev, ok := byName[ss.Name]; ok {
			record.ID = prev.ID
			if err := skills.UpdateSkill(&record); err != nil {
				return err
			}
			continue
		}
		if err := skills.CreateSkill(&record); err != nil {
			return err
		}
	}
	return nil
}

func seedExperiences(database *gorm.DB, in []seedExperience) error {
	if len(in) == 0 {
		return nil
	}
	experiences := gormstore.NewExperiencesStore(database)

	existing, err := experiences.ListExperiences()
	if err != nil {
		return err
	}
	byKey := make(map[string]model.Experience, len(existing))
	for _, e := range existing {
		byKey[e.Position+"\x00"+e.Company] = e
	}

	for _, se := range in {
		start, err := validate.ParseDate(se.StartDate)
		if err != nil {
			return fmt.Errorf("experience %q at %q: bad startDate: %w", se.Position, se.Company, err)
		}
		var end *time.Time
		if se.EndDate != "" {
			t, err := validate.ParseDate(se.EndDate)
			if err != nil {
				return fmt.Errorf("experience %q at %q: bad endDate: %w", se.Position, se.Company, err)
			}
			end = &t
		}

		record := model.Experience{
			Position:    se.Position,
			Company:     se.Company,
			Description: se.Description,
			StartDate:   start,
			EndDate:     end,
			Current:     se.Current,
			Skills:      se.Skills,
			Location:    se.Location,
		}
		if prev, ok := byKey[se.Position+"\x00"+se.Company]; ok {
			record.ID = prev.ID
			if err := experiences.UpdateExperience(&record); err != nil {
				return err
			}
			continue
		}
		if err := experiences.CreateExperience(&record); err != nil {
			return err
		}
	}
	return nil
}

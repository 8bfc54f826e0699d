package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"control-plane-backend/internal/config"
	"control-plane-backend/internal/database"
	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/repository"
	"control-plane-backend/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures
type SeedFile struct {
	Organisations []OrganisationData `yaml:"organisations"`
}

type OrganisationData struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	AvatarURL   string        `yaml:"avatar_url,omitempty"`
	Owner       uuid.UUID     `yaml:"owner"`
	Members     []MemberData  `yaml:"members,omitempty"`
	Projects    []ProjectData `yaml:"projects,omitempty"`
}

type MemberData struct {
	Identity uuid.UUID `yaml:"identity"`
	Role     string    `yaml:"role"`
}

type ProjectData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Owner       *uuid.UUID `yaml:"owner,omitempty"`
	Archived    bool       `yaml:"archived,omitempty"`
}

type seeder struct {
	organisations *service.OrganisationService
	projects      *service.ProjectService
}

func main() {
	file := flag.String("file", "scripts/data/seed.yaml", "path to the seed YAML file")
	flag.Parse()

	log.Println("Loading initial data from", *file)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	if err := newSeeder(db).run(context.Background(), seed); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

func newSeeder(db *gorm.DB) *seeder {
	validator := service.NewValidator()
	tx := repository.NewTransactionManager(db)
	orgRepo := repository.NewOrganisationRepository(db)
	memberRepo := repository.NewOrganisationMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	return &seeder{
		organisations: service.NewOrganisationService(tx, orgRepo, memberRepo, validator),
		projects:      service.NewProjectService(tx, projectRepo, orgRepo, memberRepo, validator),
	}
}

func (s *seeder) run(ctx context.Context, seed *SeedFile) error {
	var orgsCreated, membersAdded, projectsCreated int

	for _, orgData := range seed.Organisations {
		orgID, created, err := s.ensureOrganisation(ctx, orgData)
		if err != nil {
			return fmt.Errorf("organisation %s: %w", orgData.Name, err)
		}
		if created {
			orgsCreated++
		}

		for _, memberData := range orgData.Members {
			added, err := s.ensureMember(ctx, orgData.Owner, orgID, memberData)
			if err != nil {
				return fmt.Errorf("member %s of %s: %w", memberData.Identity, orgData.Name, err)
			}
			if added {
				membersAdded++
			}
		}

		existing, err := s.projectNames(ctx, orgData.Owner, orgID)
		if err != nil {
			return fmt.Errorf("projects of %s: %w", orgData.Name, err)
		}
		for _, projectData := range orgData.Projects {
			if existing[projectData.Name] {
				continue
			}
			if err := s.createProject(ctx, orgData.Owner, orgID, projectData); err != nil {
				return fmt.Errorf("project %s of %s: %w", projectData.Name, orgData.Name, err)
			}
			projectsCreated++
		}
	}

	log.Printf("Organisations: %d created, %d total", orgsCreated, len(seed.Organisations))
	log.Printf("Members: %d added", membersAdded)
	log.Printf("Projects: %d created", projectsCreated)
	return nil
}

// ensureOrganisation reuses an organisation the owner already belongs to under the same name
func (s *seeder) ensureOrganisation(ctx context.Context, orgData OrganisationData) (uuid.UUID, bool, error) {
	orgs, err := s.organisations.ListOrganisations(ctx, orgData.Owner)
	if err != nil {
		return uuid.Nil, false, err
	}
	for _, org := range orgs {
		if org.Name == orgData.Name && org.CreatedBy == orgData.Owner {
			return org.ID, false, nil
		}
	}

	created, err := s.organisations.CreateOrganisation(ctx, orgData.Owner, &service.CreateOrganisationRequest{
		Name:        orgData.Name,
		Description: optional(orgData.Description),
		AvatarURL:   optional(orgData.AvatarURL),
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.Organisation.ID, true, nil
}

func (s *seeder) ensureMember(ctx context.Context, owner, orgID uuid.UUID, memberData MemberData) (bool, error) {
	_, err := s.organisations.InviteMember(ctx, owner, orgID, &service.InviteMemberRequest{
		IdentityID: memberData.Identity,
		Role:       models.OrganisationRole(memberData.Role),
	})
	if apperrors.IsAlreadyExists(err) {
		return false, nil
	}
	return err == nil, err
}

func (s *seeder) projectNames(ctx context.Context, owner, orgID uuid.UUID) (map[string]bool, error) {
	names := make(map[string]bool)
	for page := 1; ; page++ {
		resp, err := s.projects.ListProjects(ctx, owner, &orgID, page, service.MaxPerPage)
		if err != nil {
			return nil, err
		}
		for _, p := range resp.Data {
			names[p.Name] = true
		}
		if !resp.Pagination.HasNext {
			return names, nil
		}
	}
}

func (s *seeder) createProject(ctx context.Context, owner, orgID uuid.UUID, projectData ProjectData) error {
	project, err := s.projects.CreateProject(ctx, owner, &service.CreateProjectRequest{
		Name:           projectData.Name,
		Description:    optional(projectData.Description),
		OrganisationID: orgID,
		OwnerID:        projectData.Owner,
	})
	if err != nil {
		return err
	}
	if projectData.Archived {
		_, err = s.projects.ArchiveProject(ctx, owner, project.ID)
	}
	return err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

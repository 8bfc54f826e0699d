package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"control-plane-backend/internal/config"
	"control-plane-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	postgresImage    = "postgres"
	postgresTag      = "15-alpine"
	postgresUser     = "control_plane"
	postgresPassword = "control_plane"
	postgresDB       = "control_plane_test"
)

// postgresContainer is started once per test binary and shared by every suite
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

var shared postgresContainer

// BaseTestSuite hands integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("postgres container unavailable: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and removes the container. TestMain calls it.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge postgres container: %v", err)
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table the service migrates
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}

	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			log.Printf("WARN: could not resolve table for %T: %v", model, err)
			continue
		}
		tables = append(tables, `"`+stmt.Schema.Table+`"`)
	}
	if len(tables) == 0 {
		return
	}

	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(tables, ", ") + ` CASCADE`).Error; err != nil {
		log.Printf("WARN: could not truncate %v: %v", tables, err)
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, resource.GetPort("5432/tcp"), postgresDB)

	// Ping through database/sql until the server accepts connections, then migrate with gorm
	err = pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db

	c.config = &config.Config{
		DatabaseURL:     dsn,
		Port:            "8080",
		LogLevel:        "debug",
		Environment:     "test",
		RequestTimeout:  5 * time.Second,
		WebhookAPIKey:   "test-hook-secret",
		PrincipalSource: config.PrincipalSourceHeader,
		PrincipalHeader: PrincipalHeader,
	}
	return nil
}

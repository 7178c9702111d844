package integration_test

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName      = "course_marketplace"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

// BaseSuite starts a disposable PostgreSQL container, applies the migrations
// and hands each test a pooled connection. Repository suites embed it.
type BaseSuite struct {
	suite.Suite
	dbContainer *PostgresContainer
	db          *pgxpool.Pool
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	require.NoError(s.T(), err, "failed to start DB container")

	s.dbContainer = postgresContainer

	db, err := pgxpool.New(ctx, postgresContainer.ConnectionString)
	require.NoError(s.T(), err, "failed to create connection pool")

	s.db = db
}

func (s *BaseSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.dbContainer != nil {
		err := testcontainers.TerminateContainer(s.dbContainer.Container)
		require.NoError(s.T(), err, "failed to terminate container")
	}
}

// SetupTest wipes the data between tests so suites never depend on ordering.
func (s *BaseSuite) SetupTest() {
	_, err := s.db.Exec(context.Background(),
		`TRUNCATE users, categories, courses, chapters, chapter_progress, purchases, stripe_customers
			RESTART IDENTITY CASCADE`)
	require.NoError(s.T(), err, "failed to reset tables")
}

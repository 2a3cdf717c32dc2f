package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/hindsight-db/hindsight/infra"
	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
	"github.com/hindsight-db/hindsight/utils"
)

const (
	testDbLifetime = 120 // seconds
	testUser       = "postgres"
	testPassword   = "pwd"
	testDbName     = "hindsight"
)

var testDbPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPassword),
			fmt.Sprintf("POSTGRES_USER=%s", testUser),
			fmt.Sprintf("POSTGRES_DB=%s", testDbName),
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}

	if err := resource.Expire(testDbLifetime); err != nil {
		log.Fatalf("Could not set container lifetime: %s", err)
	}
	pool.MaxWait = testDbLifetime * time.Second

	hostAndPort := resource.GetHostPort("5432/tcp")
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		testUser, testPassword, hostAndPort, testDbName)

	logger := utils.NewLogger("text")
	ctx = utils.StoreLoggerInContext(ctx, logger)

	if err := pool.Retry(func() error {
		probe, err := pgxpool.New(ctx, connectionString)
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping(ctx)
	}); err != nil {
		log.Fatalf("Could not connect to db: %s", err)
	}

	pgConfig := infra.PgConfig{ConnectionString: connectionString}
	migrater := repositories.NewMigrater(pgConfig)
	if err := migrater.Run(ctx); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}

	testDbPool, err = infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		infra.DEFAULT_MAX_CONNECTIONS)
	if err != nil {
		log.Fatalf("Could not create connection pool: %s", err)
	}

	code := m.Run()

	testDbPool.Close()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}

	os.Exit(code)
}

func buildUsecases(strategy models.AuditStrategy) usecases.Usecases {
	repository := repositories.NewHindsightDbRepository(strategy)
	executorFactory := executor_factory.NewDbExecutorFactory(repositories.NewExecutorGetter(testDbPool))
	return usecases.NewUsecases(repository, executorFactory)
}

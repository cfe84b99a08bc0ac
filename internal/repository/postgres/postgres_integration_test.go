package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"release-config-exchange/config"
	"release-config-exchange/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSwapRequesterIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	before, err := repo.GetProject(ctx, projectID)
	require.NoError(t, err)
	require.Nil(t, before.Requester)
	require.True(t, before.MissingConfig())

	first, err := repo.SwapRequester(ctx, projectID, &entities.CircleCIConfig{AccessToken: "circle-1"})
	require.NoError(t, err)
	require.NotNil(t, first.CircleCI())
	require.Equal(t, "circle-1", first.Requester.Token())
	require.Equal(t, before.Secret, first.Secret)

	second, err := repo.SwapRequester(ctx, projectID, &entities.CircleCIConfig{AccessToken: "circle-1"})
	require.NoError(t, err)
	require.NotEqual(t, first.CircleCI().ID, second.CircleCI().ID)
	require.Equal(t, 2, countRows(t, repo, "circleci_requester_configs"))
	requireSingleRequester(t, repo, projectID)

	switched, err := repo.SwapRequester(ctx, projectID, &entities.TravisCIConfig{AccessToken: "travis-1"})
	require.NoError(t, err)
	require.Nil(t, switched.CircleCI())
	require.NotNil(t, switched.TravisCI())
	require.Equal(t, "travis-1", switched.TravisCI().AccessToken)
	require.Equal(t, 2, countRows(t, repo, "circleci_requester_configs"))
	requireSingleRequester(t, repo, projectID)
}

func TestSwapRequesterAzureKeepsProjectNameVerbatim(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	project, err := repo.SwapRequester(ctx, projectID, &entities.AzureDevOpsConfig{
		AccessToken:      "tok1",
		OrganizationName: "acme",
		ProjectName:      "Widgets",
	})
	require.NoError(t, err)

	az := project.AzureDevOps()
	require.NotNil(t, az)
	require.Equal(t, "Widgets", az.ProjectName)
	require.Equal(t, "acme", az.OrganizationName)
	require.Equal(t, "tok1", az.AccessToken)
	require.NotZero(t, az.ID)
}

func TestSwapRequesterUnknownProjectIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	_, err := repo.SwapRequester(ctx, 4242, &entities.CircleCIConfig{AccessToken: "tok"})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	require.Equal(t, 0, countRows(t, repo, "circleci_requester_configs"))
}

func TestSingleRequesterConstraintIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	circle, err := repo.SwapRequester(ctx, projectID, &entities.CircleCIConfig{AccessToken: "circle-1"})
	require.NoError(t, err)

	var travisID int64
	require.NoError(t, repo.db.QueryRow(ctx,
		`INSERT INTO travisci_requester_configs(access_token) VALUES ('travis-1') RETURNING id`,
	).Scan(&travisID))

	_, err = repo.db.Exec(ctx, `UPDATE projects SET requester_travisci_id=$2 WHERE id=$1`, projectID, travisID)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	require.Equal(t, "23514", pgErr.Code)
	require.Equal(t, "projects_single_requester", pgErr.ConstraintName)

	project, err := repo.GetProject(ctx, projectID)
	require.NoError(t, err)
	require.NotNil(t, project.CircleCI())
	require.Equal(t, circle.CircleCI().ID, project.CircleCI().ID)
	requireSingleRequester(t, repo, projectID)
}

func TestConcurrentSwapsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	var wg sync.WaitGroup
	errs := make(chan error, 12)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cfg entities.Requester
			switch i % 3 {
			case 0:
				cfg = &entities.CircleCIConfig{AccessToken: "c" + strconv.Itoa(i)}
			case 1:
				cfg = &entities.TravisCIConfig{AccessToken: "t" + strconv.Itoa(i)}
			default:
				cfg = &entities.AzureDevOpsConfig{AccessToken: "a" + strconv.Itoa(i), OrganizationName: "o", ProjectName: "p"}
			}
			_, err := repo.SwapRequester(ctx, projectID, cfg)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	requireSingleRequester(t, repo, projectID)
	project, err := repo.GetProject(ctx, projectID)
	require.NoError(t, err)
	require.NotNil(t, project.Requester)
}

func TestReplaceLinkerIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	first, err := repo.ReplaceLinker(ctx, projectID)
	require.NoError(t, err)
	require.Equal(t, projectID, first.ProjectID)

	second, err := repo.ReplaceLinker(ctx, projectID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 1, countRows(t, repo, "slack_responder_linkers"))

	_, err = repo.ReplaceLinker(ctx, 4242)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestUpdateMentionIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	projectID := seedProject(t, repo, "acme", "widgets")

	_, err := repo.UpdateMention(ctx, projectID, "dana")
	require.ErrorIs(t, err, entities.ErrNotConfigured)
	unchanged, err := repo.GetProject(ctx, projectID)
	require.NoError(t, err)
	require.Nil(t, unchanged.ResponderSlack)

	seedSlackResponder(t, repo, projectID)

	updated, err := repo.UpdateMention(ctx, projectID, "dana")
	require.NoError(t, err)
	require.NotNil(t, updated.ResponderSlack)
	require.Equal(t, "dana", updated.ResponderSlack.UsernameToMention)
	require.Equal(t, "releases", updated.ResponderSlack.ChannelName)
	require.Equal(t, 1, countRows(t, repo, "slack_responder_configs"))

	_, err = repo.UpdateMention(ctx, 4242, "dana")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	require.NoError(t, repo.Ping(ctx))
	return repo
}

func seedProject(t *testing.T, repo *Postgres, owner, name string) int64 {
	t.Helper()

	var id int64
	err := repo.db.QueryRow(context.Background(),
		`INSERT INTO projects(repo_owner, repo_name, secret) VALUES ($1, $2, 'shh') RETURNING id`,
		owner, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedSlackResponder(t *testing.T, repo *Postgres, projectID int64) {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := repo.db.QueryRow(ctx, `
INSERT INTO slack_responder_configs(team_name, team_id, channel_name, channel_id)
VALUES ('Acme', 'T1', 'releases', 'C1') RETURNING id`).Scan(&id)
	require.NoError(t, err)

	_, err = repo.db.Exec(ctx, `UPDATE projects SET responder_slack_id=$2 WHERE id=$1`, projectID, id)
	require.NoError(t, err)
}

func countRows(t *testing.T, repo *Postgres, table string) int {
	t.Helper()

	var n int
	require.NoError(t, repo.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func requireSingleRequester(t *testing.T, repo *Postgres, projectID int64) {
	t.Helper()

	var n int
	err := repo.db.QueryRow(context.Background(), `
SELECT num_nonnulls(requester_circleci_id, requester_travisci_id, requester_azuredevops_id)
FROM projects WHERE id=$1`, projectID).Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=release_config_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "release_config_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       8,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=release_config_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

package repositories

import (
	"context"
	"os"
	"path/filepath"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedJSON = `[
  {
    "name": "triangle",
    "depot": "A",
    "capacity": 10,
    "roads": [
      {"from": "A", "to": "B", "distance": 5},
      {"from": "B", "to": "C", "distance": 5},
      {"from": "A", "to": "C", "distance": 20}
    ],
    "packages": [
      {"name": "P2", "from": "A", "to": "C", "weight": 4},
      {"name": "P1", "from": " B ", "to": "C", "weight": 3}
    ]
  },
  {
    "name": "empty",
    "depot": "A",
    "capacity": 1,
    "roads": [],
    "packages": []
  }
]`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newSeededRepo(t *testing.T) *SQLScenarioRepository {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(conn))
	require.NoError(t, SeedFromJSON(conn, db.SQLite, writeSeed(t, seedJSON)))
	return NewSqliteScenarioRepository(conn)
}

func TestScenarioRepositoryRoundTrip(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	names, err := repo.ListScenarios(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"empty", "triangle"}, names)

	s, err := repo.GetScenario(ctx, "triangle")
	require.NoError(t, err)
	require.Equal(t, domain.City("A"), s.Depot)
	require.Equal(t, 10, s.Capacity)
	require.Len(t, s.Roads, 3)
	require.Equal(t, []domain.Package{
		{Name: "P2", From: "A", To: "C", Weight: 4},
		{Name: "P1", From: "B", To: "C", Weight: 3},
	}, s.Packages)

	empty, err := repo.GetScenario(ctx, "empty")
	require.NoError(t, err)
	require.Empty(t, empty.Roads)
	require.Empty(t, empty.Packages)
}

func TestScenarioRepositoryNotFound(t *testing.T) {
	repo := newSeededRepo(t)
	_, err := repo.GetScenario(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestSaveScenarioReplacesExisting(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	updated := &domain.Scenario{
		Name:     "triangle",
		Depot:    "B",
		Capacity: 3,
		Roads:    []domain.Road{{From: "A", To: "B", Distance: 1}},
		Packages: []domain.Package{{Name: "P9", From: "A", To: "B", Weight: 2}},
	}
	require.NoError(t, SaveScenario(repo.DB, db.SQLite, updated))

	s, err := repo.GetScenario(ctx, "triangle")
	require.NoError(t, err)
	require.Equal(t, updated, s)
}

func TestSeedFromJSONRejectsInvalidScenarios(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitSchema(conn))

	overweight := `[{"name": "x", "depot": "A", "capacity": 2,
		"roads": [{"from": "A", "to": "B", "distance": 1}],
		"packages": [{"name": "P1", "from": "A", "to": "B", "weight": 3}]}]`
	err = SeedFromJSON(conn, db.SQLite, writeSeed(t, overweight))
	require.ErrorIs(t, err, domain.ErrOverweightPackage)

	negative := `[{"name": "x", "depot": "A", "capacity": 2,
		"roads": [{"from": "A", "to": "B", "distance": -1}], "packages": []}]`
	err = SeedFromJSON(conn, db.SQLite, writeSeed(t, negative))
	require.ErrorIs(t, err, domain.ErrInvalidDistance)

	err = SeedFromJSON(conn, db.SQLite, writeSeed(t, `{not json`))
	require.Error(t, err)
}

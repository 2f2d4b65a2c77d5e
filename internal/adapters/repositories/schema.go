package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/db"
	"strings"
)

// Initialize the database schema.
func InitSchema(conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS scenarios (
		name TEXT PRIMARY KEY,
		depot TEXT NOT NULL,
		capacity INTEGER NOT NULL CHECK (capacity > 0)
	);
	`

	createRoadsQuery := `
	CREATE TABLE IF NOT EXISTS roads (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		city_a TEXT NOT NULL,
		city_b TEXT NOT NULL,
		distance INTEGER NOT NULL CHECK (distance >= 0)
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		weight INTEGER NOT NULL CHECK (weight > 0),
		PRIMARY KEY (scenario, seq)
	);
	`

	createPlanCacheQuery := `
	CREATE TABLE IF NOT EXISTS plan_cache (
		cache_key TEXT PRIMARY KEY,
		plan TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_roads_scenario
	ON roads(scenario);
	`

	statements := []string{
		createScenariosQuery,
		createRoadsQuery,
		createPackagesQuery,
		createPlanCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RoadSeed struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type PackageSeed struct {
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

type ScenarioSeed struct {
	Name     string        `json:"name"`
	Depot    string        `json:"depot"`
	Capacity int           `json:"capacity"`
	Roads    []RoadSeed    `json:"roads"`
	Packages []PackageSeed `json:"packages"`
}

// ToScenario validates the seed and converts it to a domain scenario.
func (s ScenarioSeed) ToScenario() (*domain.Scenario, error) {
	scenario := &domain.Scenario{
		Name:     strings.TrimSpace(s.Name),
		Depot:    domain.NormalizeCity(s.Depot),
		Capacity: s.Capacity,
		Roads:    make([]domain.Road, 0, len(s.Roads)),
		Packages: make([]domain.Package, 0, len(s.Packages)),
	}
	if scenario.Name == "" {
		return nil, errors.New("scenario name cannot be empty")
	}

	for i, r := range s.Roads {
		from, to := domain.NormalizeCity(r.From), domain.NormalizeCity(r.To)
		if from == "" || to == "" {
			return nil, fmt.Errorf("road at index %d: %w", i+1, domain.ErrInvalidCity)
		}
		scenario.Roads = append(scenario.Roads, domain.Road{From: from, To: to, Distance: r.Distance})
	}

	for _, p := range s.Packages {
		pkg, err := domain.NewPackage(p.Name, p.From, p.To, p.Weight)
		if err != nil {
			return nil, err
		}
		scenario.Packages = append(scenario.Packages, pkg)
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return scenario, nil
}

// LoadScenarios reads and validates scenario seeds from a JSON file.
func LoadScenarios(jsonPath string) ([]*domain.Scenario, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load scenarios: read %q: %w", jsonPath, err)
	}

	var data []ScenarioSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load scenarios: parse json: %w", err)
	}

	out := make([]*domain.Scenario, 0, len(data))
	for i, item := range data {
		s, err := item.ToScenario()
		if err != nil {
			return nil, fmt.Errorf("load scenarios: item at index %d: %w", i+1, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Populate the database with scenarios from a JSON file.
// Existing scenarios with the same name are replaced.
func SeedFromJSON(conn *sql.DB, dialect db.Dialect, jsonPath string) error {
	scenarios, err := LoadScenarios(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}

	for _, s := range scenarios {
		if err := SaveScenario(conn, dialect, s); err != nil {
			return fmt.Errorf("seed scenarios: %w", err)
		}
	}

	return nil
}

// SaveScenario stores s, replacing any scenario with the same name.
func SaveScenario(conn *sql.DB, dialect db.Dialect, s *domain.Scenario) error {
	if conn == nil {
		return errors.New("save scenario: DB is nil")
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("save scenario %q: begin tx: %w", s.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	// Child rows are removed explicitly: SQLite only cascades with foreign_keys on.
	deletes := []string{
		`DELETE FROM packages WHERE scenario = ?;`,
		`DELETE FROM roads WHERE scenario = ?;`,
		`DELETE FROM scenarios WHERE name = ?;`,
	}
	for _, q := range deletes {
		if _, err := tx.Exec(dialect.Bind(q), s.Name); err != nil {
			return fmt.Errorf("save scenario %q: clear previous rows: %w", s.Name, err)
		}
	}

	if _, err := tx.Exec(
		dialect.Bind(`INSERT INTO scenarios (name, depot, capacity) VALUES (?, ?, ?);`),
		s.Name, string(s.Depot), s.Capacity,
	); err != nil {
		return fmt.Errorf("save scenario %q: insert scenario: %w", s.Name, err)
	}

	roadStmt, err := tx.Prepare(dialect.Bind(`
	INSERT INTO roads (
		scenario,
		city_a,
		city_b,
		distance
	)
	VALUES (?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("save scenario %q: prepare road insert: %w", s.Name, err)
	}
	defer roadStmt.Close()

	for _, r := range s.Roads {
		if _, err := roadStmt.Exec(s.Name, string(r.From), string(r.To), r.Distance); err != nil {
			return fmt.Errorf("save scenario %q: insert road %s-%s: %w", s.Name, r.From, r.To, err)
		}
	}

	pkgStmt, err := tx.Prepare(dialect.Bind(`
	INSERT INTO packages (
		scenario,
		seq,
		name,
		origin,
		destination,
		weight
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("save scenario %q: prepare package insert: %w", s.Name, err)
	}
	defer pkgStmt.Close()

	for i, p := range s.Packages {
		if _, err := pkgStmt.Exec(s.Name, i, p.Name, string(p.From), string(p.To), p.Weight); err != nil {
			return fmt.Errorf("save scenario %q: insert package %q: %w", s.Name, p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save scenario %q: commit tx: %w", s.Name, err)
	}

	return nil
}

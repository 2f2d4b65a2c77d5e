package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/platform/obs"
)

// SQL-backed implementation of the ScenarioRepository port.
// The same queries serve SQLite and Postgres through Dialect.
type SQLScenarioRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSqliteScenarioRepository(conn *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: conn, Dialect: db.SQLite}
}

func NewPostgresScenarioRepository(conn *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: conn, Dialect: db.Postgres}
}

// Return the names of all stored scenarios in alphabetical order.
func (s *SQLScenarioRepository) ListScenarios(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name FROM scenarios ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return names, nil
}

// Return one scenario with its roads and packages in insertion order.
func (s *SQLScenarioRepository) GetScenario(ctx context.Context, name string) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "scenario.repository.GetScenario")(&err)

	if s.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	scenario := &domain.Scenario{Name: name}

	var depot string
	err = s.DB.QueryRowContext(
		ctx,
		s.Dialect.Bind(`SELECT depot, capacity FROM scenarios WHERE name = ?;`),
		name,
	).Scan(&depot, &scenario.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: query scenarios table: %w", name, err)
	}
	scenario.Depot = domain.City(depot)

	if scenario.Roads, err = s.roads(ctx, name); err != nil {
		return nil, err
	}

	if scenario.Packages, err = s.packages(ctx, name); err != nil {
		return nil, err
	}

	return scenario, nil
}

func (s *SQLScenarioRepository) roads(ctx context.Context, name string) ([]domain.Road, error) {
	query := `
	SELECT
		city_a,
		city_b,
		distance
	FROM roads
	WHERE scenario = ?
	ORDER BY city_a, city_b;
	`
	rows, err := s.DB.QueryContext(ctx, s.Dialect.Bind(query), name)
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: query roads table: %w", name, err)
	}
	defer rows.Close()

	roads := make([]domain.Road, 0, 32)
	for rows.Next() {
		var from, to string
		var distance int
		if err := rows.Scan(&from, &to, &distance); err != nil {
			return nil, fmt.Errorf("get scenario %q: scan road: %w", name, err)
		}
		roads = append(roads, domain.Road{From: domain.City(from), To: domain.City(to), Distance: distance})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get scenario %q: road iteration: %w", name, err)
	}

	return roads, nil
}

func (s *SQLScenarioRepository) packages(ctx context.Context, name string) ([]domain.Package, error) {
	query := `
	SELECT
		name,
		origin,
		destination,
		weight
	FROM packages
	WHERE scenario = ?
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, s.Dialect.Bind(query), name)
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: query packages table: %w", name, err)
	}
	defer rows.Close()

	packages := make([]domain.Package, 0, 32)
	for rows.Next() {
		var pkgName, origin, destination string
		var weight int
		if err := rows.Scan(&pkgName, &origin, &destination, &weight); err != nil {
			return nil, fmt.Errorf("get scenario %q: scan package: %w", name, err)
		}

		p, err := domain.NewPackage(pkgName, origin, destination, weight)
		if err != nil {
			return nil, fmt.Errorf("get scenario %q: %w", name, err)
		}
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get scenario %q: package iteration: %w", name, err)
	}

	return packages, nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/vainnor/spacex-dash/models"
)

// Driver names registered by the imported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Open connects to a launch records database and verifies the connection
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	return conn, nil
}

// LoadLaunches reads every launch record from table ordered by its id column
func LoadLaunches(ctx context.Context, conn *sql.DB, table string) ([]models.LaunchRecord, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT launch_site, payload_mass_kg, class, booster_version_category
		FROM `+table+`
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}
	defer rows.Close()

	var records []models.LaunchRecord
	for rows.Next() {
		var r models.LaunchRecord
		if err := rows.Scan(
			&r.LaunchSite,
			&r.PayloadMassKg,
			&r.Class,
			&r.BoosterVersionCategory,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

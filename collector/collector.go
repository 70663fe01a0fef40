package collector

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vainnor/spacex-dash/db"
	"github.com/vainnor/spacex-dash/models"
	csvfetcher "github.com/vainnor/spacex-dash/services/csv_fetcher"
)

// DefaultSource is the published launch records dataset
const DefaultSource = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/spacex_launch_dash.csv"

// DefaultTable is the table read from database sources
const DefaultTable = "spacex_launches"

// Collector loads the launch records table from a file, URL or database
type Collector struct {
	client *http.Client
	table  string
}

// Option configures a Collector
type Option func(*Collector)

// WithHTTPClient sets the client used for remote CSV sources
func WithHTTPClient(client *http.Client) Option {
	return func(c *Collector) {
		c.client = client
	}
}

// WithTable sets the table read from database sources
func WithTable(table string) Option {
	return func(c *Collector) {
		c.table = table
	}
}

func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		table: DefaultTable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the launch records from source.
// Sources starting with http(s):// are fetched, postgres:// DSNs and
// sqlite:<path> (or *.db, *.sqlite paths) are queried, anything else is a CSV file.
func (c *Collector) Load(ctx context.Context, source string) (*Dataset, error) {
	records, err := c.read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", source, err)
	}
	if err := validate(records); err != nil {
		return nil, fmt.Errorf("error loading %s: %w", source, err)
	}

	ds := NewDataset(source, records)
	stats := ds.GetStats()
	log.Printf("Loaded %d launch records from %d sites (payload %.0f-%.0f kg)",
		stats.Records,
		len(stats.Sites),
		stats.MinPayload,
		stats.MaxPayload,
	)
	return ds, nil
}

func (c *Collector) read(ctx context.Context, source string) ([]models.LaunchRecord, error) {
	switch kind, target := classify(source); kind {
	case sourceHTTP:
		body, err := csvfetcher.FetchCSV(ctx, c.client, target)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return ParseCSV(body)

	case sourcePostgres:
		return c.query(ctx, db.DriverPostgres, target)

	case sourceSQLite:
		return c.query(ctx, db.DriverSQLite, target)

	default:
		f, err := os.Open(target)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ParseCSV(f)
	}
}

func (c *Collector) query(ctx context.Context, driver, dsn string) ([]models.LaunchRecord, error) {
	conn, err := db.Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return db.LoadLaunches(ctx, conn, c.table)
}

type sourceKind int

const (
	sourceFile sourceKind = iota
	sourceHTTP
	sourcePostgres
	sourceSQLite
)

func classify(source string) (sourceKind, string) {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return sourceHTTP, source
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return sourcePostgres, source
	case strings.HasPrefix(lower, "sqlite:"):
		return sourceSQLite, source[len("sqlite:"):]
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		return sourceSQLite, source
	}
	return sourceFile, source
}

// validate applies the CSV value rules to records from any source
func validate(records []models.LaunchRecord) error {
	for i, r := range records {
		switch {
		case r.LaunchSite == "":
			return fmt.Errorf("record %d: %w: empty launch site", i+1, ErrSchema)
		case r.PayloadMassKg < 0 || math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0):
			return fmt.Errorf("record %d: %w: invalid payload %v", i+1, ErrSchema, r.PayloadMassKg)
		case r.Class != models.ClassFailure && r.Class != models.ClassSuccess:
			return fmt.Errorf("record %d: %w: class %d", i+1, ErrSchema, r.Class)
		case r.BoosterVersionCategory == "":
			return fmt.Errorf("record %d: %w: empty booster version category", i+1, ErrSchema)
		}
	}
	return nil
}

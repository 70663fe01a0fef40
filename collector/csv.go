package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vainnor/spacex-dash/models"
)

// ErrSchema marks a dataset whose columns or values do not match the launch table
var ErrSchema = errors.New("launch dataset schema mismatch")

// Column headers of the launch records CSV
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnClass                  = "class"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// ParseCSV reads launch records from CSV with a header row.
// Columns other than the launch table's are ignored.
func ParseCSV(r io.Reader) ([]models.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, name)
		}
	}

	var records []models.LaunchRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int) (models.LaunchRecord, error) {
	field := func(name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var record models.LaunchRecord
	site, ok := field(ColumnLaunchSite)
	if !ok || site == "" {
		return record, fmt.Errorf("%w: empty %s", ErrSchema, ColumnLaunchSite)
	}
	record.LaunchSite = site

	payload, _ := field(ColumnPayloadMass)
	mass, err := strconv.ParseFloat(payload, 64)
	if err != nil || math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return record, fmt.Errorf("%w: invalid %s %q", ErrSchema, ColumnPayloadMass, payload)
	}
	record.PayloadMassKg = mass

	class, _ := field(ColumnClass)
	record.Class, err = parseClass(class)
	if err != nil {
		return record, err
	}

	category, ok := field(ColumnBoosterVersionCategory)
	if !ok || category == "" {
		return record, fmt.Errorf("%w: empty %s", ErrSchema, ColumnBoosterVersionCategory)
	}
	record.BoosterVersionCategory = category

	if v, ok := field(ColumnFlightNumber); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSuffix(v, ".0"))
		if err != nil || n < 0 {
			return record, fmt.Errorf("%w: invalid %s %q", ErrSchema, ColumnFlightNumber, v)
		}
		record.FlightNumber = n
	}
	record.BoosterVersion, _ = field(ColumnBoosterVersion)

	return record, nil
}

// parseClass accepts 0/1 as written by pandas, including "1.0"
func parseClass(v string) (int, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || (f != models.ClassFailure && f != models.ClassSuccess) {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrSchema, ColumnClass, v)
	}
	return int(f), nil
}

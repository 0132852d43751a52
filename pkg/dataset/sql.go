// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // registers "mysql"
	_ "github.com/lib/pq"              // registers "postgres"

	"github.com/teradata-labs/chartsense/internal/sqlitedriver"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// DriverName maps a user-facing driver name onto a registered database/sql
// driver.
func DriverName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg":
		return "postgres", nil
	case "mysql", "mariadb":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return sqlitedriver.DriverName, nil
	default:
		return "", fmt.Errorf("unsupported SQL driver %q (use postgres, mysql or sqlite)", name)
	}
}

// Query opens dsn with the named driver, runs query and converts the result
// set into a Dataset.
func Query(ctx context.Context, driver, dsn, query string, args ...interface{}) (visualization.Dataset, error) {
	name, err := DriverName(driver)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if name == sqlitedriver.DriverName {
		db, err = sqlitedriver.Open(dsn)
	} else {
		db, err = sql.Open(name, dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", name, err)
	}
	defer func() { _ = db.Close() }()

	return QueryDB(ctx, db, query, args...)
}

// QueryDB runs query on an existing connection pool.
func QueryDB(ctx context.Context, db *sql.DB, query string, args ...interface{}) (visualization.Dataset, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	ds := visualization.Dataset{}
	for rows.Next() {
		cells := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var row visualization.Row
		for i, col := range columns {
			row.Set(col, sqlValue(cells[i]))
		}
		ds = append(ds, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return ds, nil
}

// sqlValue converts a scanned cell. Text protocols (MySQL) deliver numbers as
// bytes, so byte slices go through ParseCell.
func sqlValue(v interface{}) visualization.Value {
	switch x := v.(type) {
	case []byte:
		return ParseCell(string(x))
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return visualization.String(x.Format("2006-01-02"))
		}
		return visualization.String(x.Format(time.RFC3339))
	default:
		return visualization.ValueOf(x)
	}
}

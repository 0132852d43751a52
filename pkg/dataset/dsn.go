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
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/teradata-labs/chartsense/internal/sqlitedriver"
)

// ConnConfig describes a database by its parts, as an alternative to a DSN.
type ConnConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// BuildDSN renders c as a data source name for driver. For sqlite, Database
// is the file path.
func BuildDSN(driver string, c ConnConfig) (string, error) {
	name, err := DriverName(driver)
	if err != nil {
		return "", err
	}
	if c.Database == "" {
		return "", fmt.Errorf("%s connection requires a database", name)
	}

	switch name {
	case "postgres":
		return postgresDSN(c)
	case "mysql":
		return mysqlDSN(c)
	case sqlitedriver.DriverName:
		return c.Database, nil
	default:
		return "", fmt.Errorf("cannot build a DSN for driver %q", name)
	}
}

// postgresDSN builds a libpq keyword/value string. Every value is quoted so
// spaces, @ and = survive.
func postgresDSN(c ConnConfig) (string, error) {
	if c.Host == "" {
		return "", fmt.Errorf("postgres connection requires a host")
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		dsnQuoteValue(c.Host), port, dsnQuoteValue(c.Database), dsnQuoteValue(sslMode))
	if c.User != "" {
		dsn += fmt.Sprintf(" user=%s", dsnQuoteValue(c.User))
	}
	if c.Password != "" {
		dsn += fmt.Sprintf(" password=%s", dsnQuoteValue(c.Password))
	}
	return dsn, nil
}

func dsnQuoteValue(val string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(val)
	return "'" + escaped + "'"
}

func mysqlDSN(c ConnConfig) (string, error) {
	if c.Host == "" {
		return "", fmt.Errorf("mysql connection requires a host")
	}
	port := c.Port
	if port == 0 {
		port = 3306
	}

	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port))
	cfg.DBName = c.Database
	cfg.ParseTime = true
	switch c.SSLMode {
	case "", "disable":
	case "require":
		cfg.TLSConfig = "skip-verify"
	default:
		cfg.TLSConfig = "true"
	}
	return cfg.FormatDSN(), nil
}

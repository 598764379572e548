package database

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
	"travel/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const (
	pingTimeout  = 5 * time.Second
	sqliteMemory = ":memory:"
)

// Connection is the pooled database handle shared by every repository.
// Each query checks a connection out of the pool for its own duration.
type Connection struct {
	DB     *sqlx.DB
	Driver string
}

func New(config *config.Config) *Connection {
	descriptor, err := DSN(config)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.DB.Driver).Msg("Invalid database configuration")
	}

	db := CreateConnection(config.DB.Driver, descriptor, config)
	if db == nil {
		log.Fatal().Str("driver", config.DB.Driver).Msg("Could not connect to database")
	}

	return &Connection{DB: db, Driver: config.DB.Driver}
}

// NewWithDB wraps an already opened handle, e.g. an in-memory SQLite database.
func NewWithDB(db *sqlx.DB, driver string) *Connection {
	return &Connection{DB: db, Driver: driver}
}

// DSN builds the data source name for the configured driver.
func DSN(config *config.Config) (string, error) {
	dbCfg := config.DB

	switch dbCfg.Driver {
	case DriverMySQL:
		port := dbCfg.Port
		if port == "" {
			port = "3306"
		}

		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = dbCfg.Username
		mysqlCfg.Passwd = dbCfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(dbCfg.Host, port)
		mysqlCfg.DBName = dbCfg.Name
		mysqlCfg.ParseTime = true
		mysqlCfg.Loc = time.UTC
		mysqlCfg.Params = map[string]string{"charset": "utf8mb4"}

		return mysqlCfg.FormatDSN(), nil
	case DriverPostgres:
		port := dbCfg.Port
		if port == "" {
			port = "5432"
		}

		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(dbCfg.Username, dbCfg.Password),
			Host:     net.JoinHostPort(dbCfg.Host, port),
			Path:     dbCfg.Name,
			RawQuery: "sslmode=" + url.QueryEscape(dbCfg.SSLMode),
		}

		return dsn.String(), nil
	case DriverSQLite:
		if dbCfg.Name == "" {
			return sqliteMemory, nil
		}

		return fmt.Sprintf("file:%s?_foreign_keys=on", dbCfg.Name), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}
}

// CreateConnection opens the pool and retries until the database answers.
func CreateConnection(driver, descriptor string, config *config.Config) *sqlx.DB {
	dbCfg := config.DB

	for retry := range max(dbCfg.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect(driver, descriptor)
		if err == nil {
			log.
				Info().
				Str("driver", driver).
				Str("host", dbCfg.Host).
				Str("dbName", dbCfg.Name).
				Msg("Connected to database")

			// Every in-memory SQLite connection is its own empty database.
			if driver == DriverSQLite && descriptor == sqliteMemory {
				sqlDB.SetMaxOpenConns(1)
				sqlDB.SetMaxIdleConns(1)
				sqlDB.SetConnMaxLifetime(0)

				return sqlDB
			}

			sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
			sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
			sqlDB.SetConnMaxLifetime(time.Duration(dbCfg.ConnMaxLifetimeMinutes) * time.Minute)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("driver", driver).
			Str("host", dbCfg.Host).
			Str("dbName", dbCfg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(dbCfg.RetryWaitTime) * time.Second)
	}

	return nil
}

// Quote quotes an identifier for the connection dialect. Dotted names are
// quoted part by part, so "Booking.UserID" becomes `Booking`.`UserID` on MySQL.
func (c *Connection) Quote(identifier string) string {
	return QuoteFor(c.Driver, identifier)
}

func QuoteFor(driver, identifier string) string {
	quote := `"`
	if driver == DriverMySQL {
		quote = "`"
	}

	parts := strings.Split(identifier, ".")
	for i, part := range parts {
		parts[i] = quote + strings.ReplaceAll(part, quote, quote+quote) + quote
	}

	return strings.Join(parts, ".")
}

// SupportsLastInsertID reports whether sql.Result.LastInsertId is usable.
// PostgreSQL needs INSERT ... RETURNING instead.
func (c *Connection) SupportsLastInsertID() bool {
	return c.Driver != DriverPostgres
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

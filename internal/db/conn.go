package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
	DriverMongo    = "mongodb"
)

var (
	ErrNotConnected = errors.New("database not connected")
	ErrNoMigrations = errors.New("migrations are only available for SQL drivers")
)

// Conn owns the process database handle. Exactly one of SQL or Mongo is
// set once Connect succeeds.
type Conn struct {
	driver        string
	connection    string
	mongoDatabase string

	sql   *sqlx.DB
	mongo *mongo.Client
	ready atomic.Bool
}

func New(driver, connection, mongoDatabase string) *Conn {
	return &Conn{
		driver:        driver,
		connection:    connection,
		mongoDatabase: mongoDatabase,
	}
}

// Connect opens the database. SQL drivers are migrated to the latest
// schema, MongoDB gets its indexes.
func (c *Conn) Connect(ctx context.Context) error {
	if c.ready.Load() {
		return nil
	}

	switch c.driver {
	case DriverSQLite, DriverPostgres:
		db, err := Init(c.driver, c.connection)
		if err != nil {
			return err
		}
		err = RunMigrations(db.DB, c.driver)
		if err != nil {
			_ = db.Close()
			return err
		}
		c.sql = db
	case DriverMongo:
		client, err := ConnectMongo(ctx, c.connection)
		if err != nil {
			return err
		}
		err = EnsureIndexes(ctx, client.Database(c.mongoDatabase))
		if err != nil {
			_ = client.Disconnect(ctx)
			return err
		}
		c.mongo = client
		slog.Info("database connected", "driver", c.driver, "database", c.mongoDatabase)
	default:
		return fmt.Errorf("unsupported database driver %q", c.driver)
	}

	c.ready.Store(true)
	return nil
}

func (c *Conn) Ready() bool {
	return c.ready.Load()
}

func (c *Conn) Driver() string {
	return c.driver
}

// SQL returns the SQL handle, or nil when the driver is MongoDB.
func (c *Conn) SQL() *sqlx.DB {
	return c.sql
}

// Mongo returns the configured database, or nil for SQL drivers.
func (c *Conn) Mongo() *mongo.Database {
	if c.mongo == nil {
		return nil
	}
	return c.mongo.Database(c.mongoDatabase)
}

// Ping checks that the connection still answers.
func (c *Conn) Ping(ctx context.Context) error {
	if !c.ready.Load() {
		return ErrNotConnected
	}
	if c.sql != nil {
		return c.sql.PingContext(ctx)
	}
	return c.mongo.Ping(ctx, nil)
}

// State reports the connection state for the health endpoint.
func (c *Conn) State(ctx context.Context) string {
	if !c.ready.Load() {
		return "disconnected"
	}
	if err := c.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "connected"
}

func (c *Conn) Close(ctx context.Context) error {
	if !c.ready.Swap(false) {
		return nil
	}
	if c.sql != nil {
		return Close(c.sql)
	}
	if c.mongo != nil {
		return c.mongo.Disconnect(ctx)
	}
	return nil
}

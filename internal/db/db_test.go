package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

var errStoreDown = errors.New("store down")

// failingConnector hands out connections that accept nothing: every
// statement errors and its SQL is recorded.
type failingConnector struct {
	mu   sync.Mutex
	sqls []string
}

func (f *failingConnector) Connect(context.Context) (driver.Conn, error) {
	return &failingConn{rec: f}, nil
}

func (f *failingConnector) Driver() driver.Driver { return failingDriver{} }

func (f *failingConnector) record(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sqls = append(f.sqls, query)
}

func (f *failingConnector) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sqls...)
}

type failingDriver struct{}

func (failingDriver) Open(string) (driver.Conn, error) { return nil, errStoreDown }

type failingConn struct {
	rec *failingConnector
}

func (c *failingConn) Prepare(query string) (driver.Stmt, error) {
	c.rec.record(query)
	return nil, errStoreDown
}

func (c *failingConn) Close() error { return nil }

func (c *failingConn) Begin() (driver.Tx, error) { return nil, errStoreDown }

func (c *failingConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.rec.record(query)
	return nil, errStoreDown
}

func (c *failingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.rec.record(query)
	return nil, errStoreDown
}

func openFailingDB(t *testing.T, conn *failingConnector) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sql.OpenDB(conn)}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return gdb
}

// A failed admin lookup must not be treated as "missing": seeding skips
// the id instead of inserting a possible duplicate.
func TestSeedAdminsLookupFailure(t *testing.T) {
	conn := &failingConnector{}
	gdb := openFailingDB(t, conn)

	cfg := &config.Config{AdminTelegramIDs: "101,102"}
	seedAdmins(gdb, cfg)

	var selects int
	for _, q := range conn.recorded() {
		upper := strings.ToUpper(strings.TrimSpace(q))
		if strings.HasPrefix(upper, "INSERT") {
			t.Fatalf("insert attempted after failed lookup: %s", q)
		}
		if strings.HasPrefix(upper, "SELECT") {
			selects++
		}
	}
	if selects != 2 {
		t.Errorf("lookups = %d, want one per configured id", selects)
	}
}

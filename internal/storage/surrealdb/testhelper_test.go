package surrealdb

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	surreal "github.com/surrealdb/surrealdb.go"

	"github.com/mattgrove/stockfolio/internal/common"
	tcommon "github.com/mattgrove/stockfolio/tests/common"
)

// testStore starts the shared SurrealDB container and returns a StockStore
// bound to a unique database per test for isolation.
func testStore(t *testing.T) *StockStore {
	t.Helper()

	sc := tcommon.StartSurrealDB(t)
	ctx := context.Background()

	db, err := surreal.New(sc.Address())
	if err != nil {
		t.Fatalf("connect to SurrealDB: %v", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": "root",
		"pass": "root",
	}); err != nil {
		t.Fatalf("sign in to SurrealDB: %v", err)
	}

	// Sanitize t.Name() because subtests produce names like "Test/subtest"
	// and SurrealDB rejects "/" in database names.
	sanitized := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbName := fmt.Sprintf("t_%s_%d", sanitized, time.Now().UnixNano()%100000)
	if err := db.Use(ctx, "stockfolio_test", dbName); err != nil {
		t.Fatalf("select namespace/database: %v", err)
	}

	if _, err := surreal.Query[any](ctx, db, "DEFINE TABLE IF NOT EXISTS stocks SCHEMALESS", nil); err != nil {
		t.Fatalf("define stocks table: %v", err)
	}

	t.Cleanup(func() {
		db.Close(context.Background())
	})

	return NewStockStore(db, "stocks", common.NewSilentLogger())
}

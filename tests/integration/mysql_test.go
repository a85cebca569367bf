//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"github.com/tordrt/dbsynth"
	"github.com/tordrt/dbsynth/internal/namespace"
)

var mysqlFixture = []string{
	`DROP TABLE IF EXISTS synth_orders`,
	`DROP TABLE IF EXISTS synth_users`,
	`CREATE TABLE synth_users (
		id INT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		status ENUM('active', 'inactive', 'banned') NOT NULL,
		verified TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE synth_orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT UNSIGNED NOT NULL,
		total DECIMAL(10, 2),
		FOREIGN KEY (user_id) REFERENCES synth_users(id)
	)`,
	`INSERT INTO synth_users (username, status, verified, created_at) VALUES
		('ada', 'active', 1, '2024-01-02 03:04:05'),
		('bob', 'banned', 0, '2024-02-03 04:05:06')`,
	`INSERT INTO synth_orders (user_id, total) VALUES (1, 12.50), (2, NULL)`,
}

func mysqlTestURL(t *testing.T) string {
	t.Helper()

	// Use environment variable if set, otherwise use default test connection string
	dsn := os.Getenv("MYSQL_TEST_URL")
	if dsn == "" {
		dsn = "root:testpassword@tcp(localhost:3306)/testdb"
	}

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open MySQL: %v", err)
	}
	defer conn.Close()

	for _, stmt := range mysqlFixture {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("Failed to load fixture: %v", err)
		}
	}
	return "mysql://" + dsn
}

func TestMySQLImport(t *testing.T) {
	ctx := context.Background()
	url := mysqlTestURL(t)

	ns, err := dbsynth.Import(ctx, url, &dbsynth.Options{
		Tables: []string{"synth_users", "synth_orders"},
	})
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}

	verifyCollections(t, ns, []string{"synth_users", "synth_orders"})
	verifyId(t, ns, "synth_users", "id")
	verifySameAs(t, ns, "synth_orders", "user_id", "synth_users.content.id")
	verifyCategories(t, ns, "synth_users", "status", []string{"active", "banned", "inactive"})

	if _, ok := fieldContent(t, ns, "synth_users", "verified").(*namespace.BoolContent); !ok {
		t.Errorf("Expected synth_users.verified to be bool")
	}
	if str, ok := fieldContent(t, ns, "synth_users", "created_at").(*namespace.StringContent); !ok || str.Kind != namespace.StringDateTime {
		t.Errorf("Expected synth_users.created_at to be a date time")
	}
}

func TestMySQLExcludeTables(t *testing.T) {
	ctx := context.Background()
	url := mysqlTestURL(t)

	ns, err := dbsynth.Import(ctx, url, &dbsynth.Options{
		Tables:        []string{"synth_users", "synth_orders"},
		ExcludeTables: []string{"synth_users"},
	})
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}

	verifyCollections(t, ns, []string{"synth_orders"})
	if _, ok := fieldContent(t, ns, "synth_orders", "user_id").(*namespace.SameAsContent); ok {
		t.Errorf("Expected the reference to an excluded table to be dropped")
	}
}

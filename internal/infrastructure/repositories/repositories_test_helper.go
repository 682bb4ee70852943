package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWalletTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		balance TEXT NOT NULL,
		currency TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE wallet_transactions (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		reference_id TEXT,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE paystack_notifications (
		id TEXT PRIMARY KEY,
		paystack_id INTEGER NOT NULL,
		event TEXT NOT NULL,
		domain TEXT,
		status TEXT NOT NULL,
		reference TEXT NOT NULL,
		amount TEXT NOT NULL,
		currency TEXT NOT NULL,
		gateway_response TEXT,
		channel TEXT,
		ip_address TEXT,
		paid_at DATETIME,
		customer TEXT,
		authorization TEXT,
		matched BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE monnify_notifications (
		id TEXT PRIMARY KEY,
		event_type TEXT NOT NULL,
		transaction_reference TEXT,
		payment_reference TEXT,
		payment_status TEXT,
		amount_paid TEXT,
		currency TEXT,
		paid_on DATETIME,
		event_data TEXT,
		matched BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

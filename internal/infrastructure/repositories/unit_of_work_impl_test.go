package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec(
			"INSERT INTO wallets(id,user_id,balance,currency) VALUES (?,?,?,?)",
			uuid.New().String(), uuid.New().String(), "0", "USD").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("wallets").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := GetDB(ctx, db).Exec(
			"INSERT INTO wallets(id,user_id,balance,currency) VALUES (?,?,?,?)",
			uuid.New().String(), uuid.New().String(), "0", "USD").Error; err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.Error(t, err)

	require.NoError(t, db.Table("wallets").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_WithLockAndGetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	ctx := u.WithLock(context.Background())
	lockedDB := GetDB(ctx, db)
	require.NotNil(t, lockedDB)

	require.Equal(t, db, GetDB(context.Background(), db))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Equal(t, tx, GetDB(txCtx, db))
	tx.Rollback()
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		_ = ctx
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestApplyLock_SkipsRowLockOnSqlite(t *testing.T) {
	db := newTestDB(t)

	// sqlite has no FOR UPDATE; the locked handle must still be usable
	ctx := context.WithValue(context.Background(), lockKey, true)
	locked := applyLock(ctx, db)
	require.NotNil(t, locked)

	createWalletTables(t, db)
	mustExec(t, db, "INSERT INTO wallets(id,user_id,balance,currency) VALUES (?,?,?,?)",
		uuid.New().String(), uuid.New().String(), "0", "USD")

	var count int64
	require.NoError(t, locked.Table("wallets").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

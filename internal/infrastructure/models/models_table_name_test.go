package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (User{}).TableName(); got != "users" {
		t.Fatalf("unexpected User table name: %s", got)
	}
	if got := (Wallet{}).TableName(); got != "wallets" {
		t.Fatalf("unexpected Wallet table name: %s", got)
	}
	if got := (WalletTransaction{}).TableName(); got != "wallet_transactions" {
		t.Fatalf("unexpected WalletTransaction table name: %s", got)
	}
	if got := (PaystackNotification{}).TableName(); got != "paystack_notifications" {
		t.Fatalf("unexpected PaystackNotification table name: %s", got)
	}
	if got := (MonnifyNotification{}).TableName(); got != "monnify_notifications" {
		t.Fatalf("unexpected MonnifyNotification table name: %s", got)
	}
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, TransactionStatusSuccess, NormalizeStatus("success"))
	assert.Equal(t, TransactionStatusPending, NormalizeStatus(" pending "))
	assert.Equal(t, TransactionStatus("ABANDONED"), NormalizeStatus("abandoned"))
	assert.Equal(t, TransactionStatus(""), NormalizeStatus(""))
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, TransactionTypeCredit, NormalizeType("credit"))
	assert.Equal(t, TransactionTypeDebit, NormalizeType(" DEBIT "))
	assert.Equal(t, TransactionType("ADJUSTMENT"), NormalizeType("adjustment"))
}

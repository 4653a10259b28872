package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, PaymentPending.Valid())
	assert.True(t, PaymentDone.Valid())
	assert.False(t, PaymentStatus("").Valid())
	assert.False(t, PaymentStatus("pending").Valid())
	assert.False(t, PaymentStatus("CANCELLED").Valid())
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalStringAndNumber(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","serviceId":7}`), &b))
	assert.Equal(t, ID("abc"), b.ID)
	assert.Equal(t, ID("7"), b.ServiceID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &b))
	assert.True(t, b.ID.IsZero())
}

func TestIDUnmarshalLargeNumberKeepsPrecision(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":9007199254740993}`), &b))
	assert.Equal(t, ID("9007199254740993"), b.ID)
}

func TestMaskedAccount(t *testing.T) {
	assert.Equal(t, "******7890", PaymentMethod{AccountNumber: "1234567890"}.MaskedAccount())
	assert.Equal(t, "1234", PaymentMethod{AccountNumber: "1234"}.MaskedAccount())
	assert.Equal(t, "", PaymentMethod{}.MaskedAccount())
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringAcceptsStringsAndNumbers(t *testing.T) {
	var req VerifyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":123456789,"code":"0042"}`), &req))
	assert.Equal(t, FlexString("123456789"), req.TelegramID)
	assert.Equal(t, FlexString("0042"), req.Code)

	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":null}`), &req))
	assert.Empty(t, req.TelegramID)

	assert.Error(t, json.Unmarshal([]byte(`{"telegram_id":{}}`), &req))
}

func TestRealmKeys(t *testing.T) {
	assert.Equal(t, "auth:code:1", UserRealm.CodeKey("1"))
	assert.Equal(t, "auth:session:t", UserRealm.SessionKey("t"))
	assert.Equal(t, "admin:otp:1", AdminRealm.CodeKey("1"))
	assert.Equal(t, "admin:session:t", AdminRealm.SessionKey("t"))
}

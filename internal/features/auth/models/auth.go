package models

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	// CodeTTL is how long a one-time code stays redeemable.
	CodeTTL = 5 * time.Minute
	// TokenBytes is the session token entropy; tokens are hex, so 64 chars.
	TokenBytes = 32
)

// Realm describes one login flow: where its codes and sessions live in the
// store, how codes look, and how long sessions last.
type Realm struct {
	Name          string
	CodePrefix    string
	SessionPrefix string
	CodeMin       int
	CodeMax       int
	CodeWidth     int
	SessionTTL    time.Duration
	MessageFormat string
}

var (
	UserRealm = Realm{
		Name:          "user",
		CodePrefix:    "auth:code:",
		SessionPrefix: "auth:session:",
		CodeMin:       0,
		CodeMax:       9999,
		CodeWidth:     4,
		SessionTTL:    30 * 24 * time.Hour,
		MessageFormat: "کد تایید شما: %s",
	}

	AdminRealm = Realm{
		Name:          "admin",
		CodePrefix:    "admin:otp:",
		SessionPrefix: "admin:session:",
		CodeMin:       10000,
		CodeMax:       99999,
		CodeWidth:     5,
		SessionTTL:    12 * time.Hour,
		MessageFormat: "کد ورود ادمین: %s",
	}
)

func (r Realm) CodeKey(identity string) string {
	return r.CodePrefix + identity
}

func (r Realm) SessionKey(token string) string {
	return r.SessionPrefix + token
}

// FlexString accepts a JSON string or number; browser forms send Telegram
// ids either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

type RequestCodeRequest struct {
	TelegramID FlexString `json:"telegram_id" example:"123456789"`
}

type VerifyRequest struct {
	TelegramID FlexString `json:"telegram_id" example:"123456789"`
	Code       FlexString `json:"code" example:"0421"`
}

type AdminLoginRequest struct {
	AdminID FlexString `json:"admin_id" example:"123456789"`
}

type AdminVerifyRequest struct {
	AdminID FlexString `json:"admin_id" example:"123456789"`
	Code    FlexString `json:"code" example:"48213"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

package models

// User is the profile stored under user:<telegram_id>. Timestamps are Unix
// milliseconds.
// @Description User profile
type User struct {
	TelegramID        string `json:"telegram_id" example:"123456789"`
	CreatedAt         int64  `json:"created_at,omitempty" example:"1718000000000"`
	LastLogin         int64  `json:"last_login,omitempty" example:"1718000000000"`
	Configs           int    `json:"configs,omitempty" example:"2"`
	LastConfigRequest int64  `json:"last_config_request,omitempty" example:"1718000000000"`
}

type MeResponse struct {
	User *User `json:"user"`
}

type ConfigRequestResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Config request sent successfully"`
}

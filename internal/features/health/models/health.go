package models

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusError    = "error"
	StatusSet      = "set"
	StatusMissing  = "missing"
)

type Services struct {
	KV               string `json:"kv" example:"ok"`
	BotToken         string `json:"bot_token" example:"set"`
	AdminCredentials string `json:"admin_credentials" example:"set"`
}

type HealthResponse struct {
	Status    string   `json:"status" example:"ok"`
	Timestamp string   `json:"timestamp" example:"2024-06-01T12:00:00.000Z"`
	Version   string   `json:"version" example:"1.0.0"`
	Services  Services `json:"services"`
}

type AdminInfo struct {
	HasKV        bool `json:"hasKV"`
	HasBotToken  bool `json:"hasBotToken"`
	AdminUserSet bool `json:"adminUserSet"`
	AdminPassSet bool `json:"adminPassSet"`
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
)

const (
	InitDataHeader    = "X-Telegram-Init-Data"
	TelegramUserKey   = "telegram_user"
	TelegramUserIDKey = "telegram_user_id"
)

// TelegramInitData validates signed Telegram Mini App init data taken from
// the X-Telegram-Init-Data header (or the legacy init_data header) and
// stores the embedded user in the context.
func TelegramInitData(botToken string, maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(InitDataHeader)
		if raw == "" {
			raw = c.GetHeader("init_data")
		}
		if raw == "" {
			abortWith(c, errors.NewUnauthorizedError("Telegram init data required"))
			return
		}

		if botToken == "" {
			abortWith(c, errors.NewConfigError("bot token not configured"))
			return
		}

		if err := initdata.Validate(raw, botToken, maxAge); err != nil {
			logger.Debug().Err(err).Msg("Init data validation failed")
			abortWith(c, errors.NewUnauthorizedError("invalid init data"))
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			abortWith(c, errors.NewValidationError("init_data", "failed to parse init data"))
			return
		}
		if parsed.User.ID == 0 {
			abortWith(c, errors.NewValidationError("init_data", "init data carries no user"))
			return
		}

		c.Set(TelegramUserKey, parsed.User)
		c.Set(TelegramUserIDKey, strconv.FormatInt(parsed.User.ID, 10))
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

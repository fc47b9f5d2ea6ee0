package middleware

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger creates middleware that logs every update and recovers from handler panics
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			start := time.Now()
			fields := []zap.Field{
				zap.String("request_id", uuid.New().String()),
				zap.Int("update_id", c.Update().ID),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from handler panic", append(fields, zap.Any("panic", r))...)
					err = nil
				}
			}()

			err = next(c)

			fields = append(fields, zap.Duration("elapsed", time.Since(start)))
			if err != nil {
				logger.Warn("Update handled with error", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

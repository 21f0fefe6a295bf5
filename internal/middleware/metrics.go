package middleware

import (
	"errors"
	"net/http"
	"time"

	"shopapi/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics はルート定義ごとに件数と処理時間を記録する。
func Metrics(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.Record(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// 失敗時の共通形 {error:true, message, details?}
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// 4xxはその場で返す。5xxや想定外のエラーは中央のエラーハンドラへ渡す（ログを残すため）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok && he.Status < http.StatusInternalServerError {
		return c.JSON(he.Status, ErrorResponse{Error: true, Message: he.Message})
	}
	return err
}

// NewHTTPErrorHandler は echo の HTTPErrorHandler。
// usecase.HTTPError / echo.HTTPError / その他（500）を同じ形で返す。
func NewHTTPErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		res := ErrorResponse{Error: true, Message: http.StatusText(http.StatusInternalServerError)}
		status := http.StatusInternalServerError

		var ee *echo.HTTPError
		if he, ok := usecase.AsHTTPError(err); ok {
			status = he.Status
			res.Message = he.Message
			if he.Err != nil {
				res.Details = he.Err.Error()
			}
		} else if errors.As(err, &ee) {
			status = ee.Code
			res.Message = fmt.Sprint(ee.Message)
			if ee.Internal != nil {
				res.Details = ee.Internal.Error()
			}
		} else {
			res.Details = err.Error()
		}

		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
			}).Error("request error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, res)
		}
		if werr != nil {
			log.WithError(werr).Warn("failed to write error response")
		}
	}
}

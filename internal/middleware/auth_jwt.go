package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shopapi/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey   = "user_id"   // string（ObjectID hex）
	CtxUserRoleKey = "user_role" // string
)

const msgUnauthorized = "Unauthorized"

// bearerAuth用のJWT検証ミドルウェア。
// トークンの発行は別サービス。ここでは HS256 の署名と sub / role だけ見る。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return unauthorized(c)
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c)
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return unauthorized(c)
			}

			//JWTをパースして検証する（expがあれば期限も見る）
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return unauthorized(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}

			userID, err := parseSubject(claims["sub"])
			if err != nil || userID == "" {
				return unauthorized(c)
			}

			//roleは無くてもよい（adminルートはRequireRoleで弾く）
			role, _ := claims["role"].(string)

			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserRoleKey, strings.TrimSpace(role))

			return next(c)
		}
	}
}

// UserID は AuthJWT が入れた user_id を返す
func UserID(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxUserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func UserRole(c echo.Context) (string, bool) {
	role, ok := c.Get(CtxUserRoleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: true, Message: msg}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorJSON(msgUnauthorized))
}

// subは文字列が基本。数値で来ても文字列にそろえる
func parseSubject(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", errors.New("invalid sub")
	}
}

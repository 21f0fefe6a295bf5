// devtoken はローカル確認用のアクセストークンを発行する。
//
//	JWT_SECRET=... go run ./cmd/devtoken -sub 65a1b2c3d4e5f60718293a01 -role Admin
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"shopapi/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	if role != "" {
		claims["role"] = string(role)
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func main() {
	sub := flag.String("sub", model.NewID(), "user id (sub claim)")
	role := flag.String("role", string(model.RoleUser), "role claim (User / Admin, empty to omit)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	issuer := &jwtIssuer{secret: []byte(secret), accessTTL: *ttl}
	token, exp, err := issuer.Issue(*sub, model.Role(*role), time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "sub=%s role=%s expires=%s\n", *sub, *role, exp.UTC().Format(time.RFC3339))
	fmt.Println(token)
}

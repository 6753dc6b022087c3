package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
)

type ctxKey int

const userNameKey ctxKey = iota + 1

var ErrNoUserName = errors.New("user-name is empty")

type Profile struct {
	Username string `json:"username"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

func SetAuthContext(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, userNameKey, userName)
}

func GetUserName(ctx context.Context) (string, error) {
	userName, ok := ctx.Value(userNameKey).(string)
	if !ok || userName == "" {
		return "", ErrNoUserName
	}
	return userName, nil
}

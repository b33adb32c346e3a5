// Package auth stores the provider access token in the system keyring.
package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/clipseek/clipseek/constant"
	"github.com/zalando/go-keyring"
)

// EnvToken takes precedence over the keyring when set.
const EnvToken = "CLIPSEEK_TOKEN"

const user = "provider-token"

// SetToken persists token to the keyring.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}

	return keyring.Set(constant.Clipseek, user, token)
}

// GetToken reads the keyring entry.
func GetToken() (string, error) {
	return keyring.Get(constant.Clipseek, user)
}

func DeleteToken() error {
	return keyring.Delete(constant.Clipseek, user)
}

// Token resolves the token to send with page requests.
// The environment wins over the keyring; a missing entry yields "" and no error.
func Token() (string, error) {
	if token, ok := os.LookupEnv(EnvToken); ok && token != "" {
		return token, nil
	}

	token, err := GetToken()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}

	return token, err
}

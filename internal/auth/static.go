// Package auth isolates the admin credential check behind a small interface
// so the static shared token can later be replaced by a signed, expiring
// credential without touching handler logic.
package auth

import (
	"crypto/subtle"

	"github.com/Bloopd3d/webs/internal/domain"
)

type Provider interface {
	Login(username, password string) (domain.AdminToken, error)
	Authorize(token string) error
}

// StaticProvider authenticates against one fixed username/password pair and
// hands out one fixed bearer token. It is a "knows the constant" gate, not a
// real authentication scheme.
type StaticProvider struct {
	username string
	password string
	token    string
}

func NewStaticProvider(username, password, token string) *StaticProvider {
	return &StaticProvider{
		username: username,
		password: password,
		token:    token,
	}
}

func (p *StaticProvider) Login(username, password string) (domain.AdminToken, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !userOK || !passOK {
		return domain.AdminToken{}, domain.ErrUnauthorized
	}

	return domain.AdminToken{
		Token:    p.token,
		Username: p.username,
	}, nil
}

func (p *StaticProvider) Authorize(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(p.token)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}

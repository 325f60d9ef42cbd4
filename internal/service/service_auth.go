// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// authService checks candidates against one configured secret. The secret is
// either plain text or a bcrypt hash; the form is detected once at
// construction.
type authService struct {
	secret []byte
	hashed bool

	logger *logger.Logger
}

// NewAuthService builds an AuthService for cfg.Password. An empty password is
// rejected with ErrPasswordNotConfigured. A secret with a bcrypt prefix that
// is not a valid hash is used as a plain secret.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.Password == "" {
		return nil, ErrPasswordNotConfigured
	}

	hashed := isBcryptHash(cfg.Password)
	if hashed {
		if _, err := bcrypt.Cost([]byte(cfg.Password)); err != nil {
			logger.Warn().Err(err).Msg("password looks like a bcrypt hash but does not parse; comparing it as plain text")
			hashed = false
		}
	}
	logger.Debug().Bool("bcrypt", hashed).Msg("creating auth service")

	return &authService{
		secret: []byte(cfg.Password),
		hashed: hashed,
		logger: logger,
	}, nil
}

// CheckPassword returns nil when candidate matches the secret,
// ErrMissingPassword when it is empty and ErrWrongPassword otherwise.
// Plain secrets are compared in constant time.
func (a *authService) CheckPassword(ctx context.Context, candidate string) error {
	if candidate == "" {
		return ErrMissingPassword
	}

	if a.hashed {
		if err := bcrypt.CompareHashAndPassword(a.secret, []byte(candidate)); err != nil {
			if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				logger.FromContext(ctx).Err(err).Str("func", "*authService.CheckPassword").Msg("bcrypt comparison failed")
			}
			return ErrWrongPassword
		}
		return nil
	}

	if subtle.ConstantTimeCompare(a.secret, []byte(candidate)) != 1 {
		return ErrWrongPassword
	}
	return nil
}

func isBcryptHash(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/denmor86/ya-orderdesk/internal/config"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/metrics"
	"golang.org/x/crypto/bcrypt"
)

var ErrUnauthorized = errors.New("unauthorized")

// Scope - область действия ключа доступа
type Scope string

const (
	ScopeList    Scope = "list"
	ScopeProcess Scope = "process"
)

type AccessService interface {
	Authorize(scope Scope, key string) error
}

// Access - проверка статических ключей доступа.
// Ключ, начинающийся с "$2", считается bcrypt-хешем.
type Access struct {
	Keys map[Scope]string
}

// Создание сервиса
func NewAccess(cfg config.AccessConfig) AccessService {
	keys := map[Scope]string{
		ScopeList:    cfg.ListKey,
		ScopeProcess: cfg.ProcessKey,
	}
	for scope, key := range keys {
		if key == "" {
			logger.Warnw("api key is not configured, access denied for scope", "scope", string(scope))
		}
	}
	return &Access{Keys: keys}
}

// Authorize - сверяет переданный ключ с настроенным для scope
func (a *Access) Authorize(scope Scope, key string) error {
	expected := a.Keys[scope]
	if expected == "" || key == "" || !matchKey(expected, key) {
		metrics.AuthFailures.WithLabelValues(string(scope)).Inc()
		return ErrUnauthorized
	}
	return nil
}

func matchKey(expected, key string) bool {
	if strings.HasPrefix(expected, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(key)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(key)) == 1
}

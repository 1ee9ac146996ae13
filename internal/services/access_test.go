package services

import (
	"errors"
	"testing"

	"github.com/denmor86/ya-orderdesk/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestAccessService_Authorize(t *testing.T) {
	initLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}

	access := NewAccess(config.AccessConfig{
		ListKey:    "list-secret",
		ProcessKey: string(hash),
	})

	testCases := []struct {
		Name          string
		Scope         Scope
		Key           string
		ExpectedError error
	}{
		{
			Name:  "Success. Plain key #1",
			Scope: ScopeList,
			Key:   "list-secret",
		},
		{
			Name:          "Error. Wrong key #2",
			Scope:         ScopeList,
			Key:           "list-secreT",
			ExpectedError: ErrUnauthorized,
		},
		{
			Name:          "Error. Empty key #3",
			Scope:         ScopeList,
			Key:           "",
			ExpectedError: ErrUnauthorized,
		},
		{
			Name:          "Error. Key of another scope #4",
			Scope:         ScopeProcess,
			Key:           "list-secret",
			ExpectedError: ErrUnauthorized,
		},
		{
			Name:  "Success. Bcrypt hash #5",
			Scope: ScopeProcess,
			Key:   "hashed-secret",
		},
		{
			Name:          "Error. Hash itself is not a key #6",
			Scope:         ScopeProcess,
			Key:           string(hash),
			ExpectedError: ErrUnauthorized,
		},
		{
			Name:          "Error. Unknown scope #7",
			Scope:         Scope("admin"),
			Key:           "list-secret",
			ExpectedError: ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := access.Authorize(tc.Scope, tc.Key)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestAccessService_EmptyKeyDeniesEverything(t *testing.T) {
	initLogger()

	access := NewAccess(config.AccessConfig{})

	for _, key := range []string{"", "anything"} {
		if err := access.Authorize(ScopeList, key); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized for key %q, got '%v'", key, err)
		}
		if err := access.Authorize(ScopeProcess, key); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized for key %q, got '%v'", key, err)
		}
	}
}

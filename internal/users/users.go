// Package users holds the fixed account set. Accounts are loaded once at
// startup from users.json (initialized with the default pair on first run);
// there is no self-service account creation.
package users

import (
	"path/filepath"

	"github.com/arkanum/sentinel/internal/store"
)

// Role is the fixed role enumeration.
type Role string

const (
	RoleDirector Role = "DIRECTOR"
	RoleContador Role = "CONTADOR"
)

// Account is one configured login. Passwords are stored as configured;
// this is a single-operator deployment with no self-service credentials.
type Account struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// DefaultAccounts is the seed set written on first startup.
func DefaultAccounts() map[string]Account {
	return map[string]Account{
		"director@arkanum": {Password: "1234", Role: RoleDirector},
		"contador@arkanum": {Password: "1234", Role: RoleContador},
	}
}

// LoadAccounts reads users.json under dataDir, initializing it with the
// defaults when missing.
func LoadAccounts(dataDir string) (map[string]Account, error) {
	path := filepath.Join(dataDir, "users.json")
	accounts := map[string]Account{}
	if err := store.Load(path, &accounts, DefaultAccounts()); err != nil {
		return nil, err
	}
	return accounts, nil
}

package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := NewService(DefaultAccounts())

	role, ok := svc.Authenticate("director@arkanum", "1234")
	require.True(t, ok)
	require.Equal(t, RoleDirector, role)

	_, ok = svc.Authenticate("director@arkanum", "wrong")
	require.False(t, ok)

	_, ok = svc.Authenticate("nobody@arkanum", "1234")
	require.False(t, ok)
}

func TestRoleOf(t *testing.T) {
	svc := NewService(DefaultAccounts())

	role, ok := svc.RoleOf("contador@arkanum")
	require.True(t, ok)
	require.Equal(t, RoleContador, role)

	_, ok = svc.RoleOf("nobody@arkanum")
	require.False(t, ok)
}

func TestLoadAccountsInitializesDefaults(t *testing.T) {
	dir := t.TempDir()
	accounts, err := LoadAccounts(dir)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, RoleDirector, accounts["director@arkanum"].Role)

	// second load reads the persisted file
	again, err := LoadAccounts(dir)
	require.NoError(t, err)
	require.Equal(t, accounts, again)
}

package users

// Service answers the two questions the rest of the system asks about
// accounts: does this login check out, and what role does an identifier
// carry.
type Service struct {
	accounts map[string]Account
}

func NewService(accounts map[string]Account) *Service {
	return &Service{accounts: accounts}
}

// Authenticate verifies a username/password pair and returns the role on
// success.
func (s *Service) Authenticate(username, password string) (Role, bool) {
	a, ok := s.accounts[username]
	if !ok || a.Password != password {
		return "", false
	}
	return a.Role, true
}

// RoleOf returns the role for a known identifier.
func (s *Service) RoleOf(username string) (Role, bool) {
	a, ok := s.accounts[username]
	if !ok {
		return "", false
	}
	return a.Role, true
}

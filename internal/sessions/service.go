package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create stores a new session for the user and returns the opaque token.
func (s *Service) Create(ctx context.Context, user string, ttl time.Duration) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	now := time.Now().UTC()
	sess := &Session{
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Validate returns the session when the token is valid and not expired.
func (s *Service) Validate(ctx context.Context, token string) (*Session, error) {
	sess, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		// cleanup expired session
		_ = s.repo.DeleteByToken(ctx, token)
		return nil, nil
	}
	return sess, nil
}

func (s *Service) Delete(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServiceCreateAndValidate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	token, err := svc.Create(ctx, "director@arkanum", time.Hour)
	require.NoError(t, err)
	require.Len(t, token, 64)

	sess, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "director@arkanum", sess.User)
}

func TestServiceValidateUnknownToken(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	sess, err := svc.Validate(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestServiceValidateExpired(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	token, err := svc.Create(ctx, "contador@arkanum", -time.Minute)
	require.NoError(t, err)

	sess, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	token, err := svc.Create(ctx, "director@arkanum", time.Hour)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, token))

	sess, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	require.Nil(t, sess)
}

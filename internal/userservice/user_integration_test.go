package userservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/postly/internal/common"
)

func TestUserService_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := common.TestDB("file://../../migrations", t)

	tm, err := NewTokenMaker(testSecret, time.Hour)
	require.NoError(t, err)

	s := NewUserService(db, nil, tm, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	token, err := s.Signup(ctx, SignupInput{Username: "ada@example.com", Password: "secret1", Name: "Ada"})
	require.NoError(t, err)

	id, err := s.Authenticate(token)
	require.NoError(t, err)

	_, err = s.Signup(ctx, SignupInput{Username: "ada@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = s.Signin(ctx, SigninInput{Username: "ada@example.com", Password: "secret1"})
	assert.NoError(t, err)

	_, err = s.Signin(ctx, SigninInput{Username: "ada@example.com", Password: "wrong-one"})
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	require.NoError(t, s.UpdateUser(ctx, id, UpdateUserInput{Bio: strptr("writes about Go")}))

	u, err := s.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "writes about Go", u.Bio)

	var stored []byte
	require.NoError(t, db.QueryRow("SELECT password FROM users WHERE id = $1", id).Scan(&stored))
	assert.NotEqual(t, []byte("secret1"), stored)
}

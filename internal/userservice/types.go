package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/postly/internal/common"
)

const (
	// bcrypt silently truncates longer inputs
	maxPasswordBytes = 72

	DefaultAccessTokenTTL time.Duration = 7 * 24 * time.Hour
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	tokens *TokenMaker
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  Password  `json:"-"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

type SignupInput struct {
	Username string `json:"username" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"max=100"`
}

type SigninInput struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateUserInput carries the profile fields to change; nil fields are left as they are.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

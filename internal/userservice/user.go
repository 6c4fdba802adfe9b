package userservice

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/sushihentaime/postly/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("incorrect credentials")
)

// NewUserService wires the user store, token maker and event producer. mb may be nil, in
// which case no user.created event is published.
func NewUserService(db *sql.DB, mb common.MessageProducer, tokens *TokenMaker, logger *slog.Logger) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		tokens: tokens,
		logger: logger,
	}
}

// Signup creates the account, announces it on the broker and returns an access token.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (string, error) {
	v := common.NewValidator()
	validateSignup(v, in)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	u := User{
		Username: in.Username,
		Name:     in.Name,
	}

	if err := u.Password.set(in.Password); err != nil {
		return "", err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return "", err
	}

	if s.mb != nil {
		ev := common.UserCreatedEvent{UserID: u.ID, Username: u.Username, Name: u.Name}
		// the account exists already; a lost welcome email must not fail the signup
		if err := common.PublishUserCreated(ctx, s.mb, ev); err != nil {
			s.logger.Error("could not publish user.created", slog.Int("user_id", u.ID), slog.String("error", err.Error()))
		}
	}

	return s.tokens.Create(u.ID)
}

// Signin checks the credentials and returns a fresh access token.
func (s *UserService) Signin(ctx context.Context, in SigninInput) (string, error) {
	v := common.NewValidator()
	v.CheckStruct(in)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	user, err := s.m.getByUsername(ctx, in.Username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", ErrAuthenticationFailure
		default:
			return "", err
		}
	}

	ok, err := user.Password.compare(in.Password)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", ErrAuthenticationFailure
	}

	return s.tokens.Create(user.ID)
}

// Authenticate verifies a bearer credential and returns the caller id.
func (s *UserService) Authenticate(token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	return s.tokens.Parse(token)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// UpdateUser changes the name, bio or password of the user; omitted fields keep their value.
func (s *UserService) UpdateUser(ctx context.Context, id int, in UpdateUserInput) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateUpdate(v, in)
	if !v.Valid() {
		return v.ValidationError()
	}

	user, err := s.m.getByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}

	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if in.Password != nil {
		if err := user.Password.set(*in.Password); err != nil {
			return err
		}
	}

	return s.m.update(ctx, user)
}

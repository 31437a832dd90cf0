package user

import (
	"context"
	"errors"
	"log"

	domain "loan-pricing-approval/internal/domain/user"
	"loan-pricing-approval/pkg/id"
	"loan-pricing-approval/pkg/token"
)

// Usecase owns all User mutations: login, provisioning, activation.
type Usecase struct {
	repo       domain.Repository
	jwtSecret  string
	accessTTL  int // minutes
	bcryptCost int
}

func NewUsecase(r domain.Repository, jwtSecret string, accessTTLMin, bcryptCost int) *Usecase {
	return &Usecase{repo: r, jwtSecret: jwtSecret, accessTTL: accessTTLMin, bcryptCost: bcryptCost}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller; inactive accounts
// are rejected outright.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthDTO, error) {
	rec, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if !rec.Active {
		return nil, domain.ErrInactive
	}
	if !token.VerifyPassword(rec.PasswordHash, in.Password) {
		return nil, domain.ErrBadCredentials
	}

	at, err := token.NewAccessToken(u.jwtSecret, rec.UserID, string(rec.Role), u.accessTTL)
	if err != nil {
		return nil, err
	}
	return &AuthDTO{AccessToken: at.Token, TokenType: "Bearer", Role: string(rec.Role)}, nil
}

// CurrentUser returns the projection of the authenticated principal.
func (u *Usecase) CurrentUser(ctx context.Context, userID string) (*UserDTO, error) {
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	recs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(recs))
	for i := range recs {
		out = append(out, *toDTO(&recs[i]))
	}
	return out, nil
}

// Create provisions a new account. Email uniqueness is checked up front;
// the store's unique index backs it up.
func (u *Usecase) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	exists, err := u.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hash, err := token.HashPassword(in.Password, u.bcryptCost)
	if err != nil {
		return nil, err
	}
	rec := &domain.User{
		UserID:       id.NewID32(),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.Role(in.Role),
		Active:       true,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

// SetActive toggles the account flag. Accounts are never hard-deleted.
func (u *Usecase) SetActive(ctx context.Context, userID string, active bool) (*UserDTO, error) {
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.Active = active
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

// EnsureAdmin is the idempotent bootstrap step run once at startup:
// check-then-create of the default admin account keyed on its email.
func (u *Usecase) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := u.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := token.HashPassword(password, u.bcryptCost)
	if err != nil {
		return err
	}
	rec := &domain.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return err
	}
	log.Printf("bootstrap: admin user %s created", email)
	return nil
}

func toDTO(rec *domain.User) *UserDTO {
	return &UserDTO{UserID: rec.UserID, Email: rec.Email, Role: string(rec.Role), Active: rec.Active}
}

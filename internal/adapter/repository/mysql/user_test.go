package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "loan-pricing-approval/internal/domain/user"
	"loan-pricing-approval/pkg/id"
)

func makeUser(email string, role userDomain.Role) *userDomain.User {
	return &userDomain.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: "$2a$04$notarealhashbutlongenoughxxxxx",
		Role:         role,
		Active:       true,
	}
}

func TestUserCreateAndLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("alice@bank.com", userDomain.RoleUser)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if byID.Email != u.Email {
		t.Fatalf("got %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "alice@bank.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.UserID != u.UserID {
		t.Fatalf("got %+v", byEmail)
	}

	ok, err := repo.ExistsByEmail(ctx, "alice@bank.com")
	if err != nil || !ok {
		t.Fatalf("ExistsByEmail = %v, %v", ok, err)
	}
	ok, err = repo.ExistsByEmail(ctx, "nobody@bank.com")
	if err != nil || ok {
		t.Fatalf("ExistsByEmail(nobody) = %v, %v", ok, err)
	}
}

func TestUserLookups_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByUserID(ctx, "missing"); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("GetByUserID err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "missing@bank.com"); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("GetByEmail err = %v, want ErrNotFound", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser("dup@bank.com", userDomain.RoleUser)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeUser("dup@bank.com", userDomain.RoleUser))
	if !errors.Is(err, userDomain.ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
}

func TestUserSave_PersistsActiveFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("bob@bank.com", userDomain.RoleUser)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u.Active = false
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Active {
		t.Fatal("deactivation did not persist")
	}
}

func TestUserListAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@bank.com", "b@bank.com", "c@bank.com"} {
		if err := repo.Create(ctx, makeUser(email, userDomain.RoleUser)); err != nil {
			t.Fatalf("Create %s: %v", email, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
}

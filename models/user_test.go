package models

import (
	"errors"
	"testing"

	"github.com/akinalp/tarif/pkg"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateUserRequest{Username: " ayse_1 ", Email: " Ayse@Example.COM ", Password: "sifre123"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	// Normalize: trim + email lowercase
	if valid.Username != "ayse_1" {
		t.Errorf("username not trimmed: %q", valid.Username)
	}
	if valid.Email != "ayse@example.com" {
		t.Errorf("email not normalized: %q", valid.Email)
	}

	cases := []struct {
		name string
		req  CreateUserRequest
	}{
		{"short username", CreateUserRequest{Username: "ab", Email: "a@b.co", Password: "sifre123"}},
		{"invalid chars", CreateUserRequest{Username: "ayse-1", Email: "a@b.co", Password: "sifre123"}},
		{"bad email", CreateUserRequest{Username: "gecerli", Email: "bozuk", Password: "sifre123"}},
		{"no at sign", CreateUserRequest{Username: "gecerli", Email: "a.b.co", Password: "sifre123"}},
		{"short password", CreateUserRequest{Username: "gecerli", Email: "a@b.co", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.req.Validate(); !errors.Is(err, pkg.ErrBadRequest) {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	// nil alanlar hiç kontrol edilmez
	empty := UpdateUserRequest{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty update should be valid, got %v", err)
	}

	bad := "x"
	req := UpdateUserRequest{Username: &bad}
	if err := req.Validate(); !errors.Is(err, pkg.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest for short username, got %v", err)
	}

	email := " Yeni@Example.com "
	req = UpdateUserRequest{Email: &email}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if email != "yeni@example.com" {
		t.Errorf("email not normalized in place: %q", email)
	}
}

func TestUserListFilter_Normalize(t *testing.T) {
	t.Parallel()

	// Whitelist dışı sort kolonu ve bozuk limit/offset güvenli varsayılanlara iner
	f := UserListFilter{SortBy: "password_hash; DROP TABLE users", SortDir: "sideways", Limit: 10000, Offset: -3}
	f.Normalize()

	if f.SortBy != "created_at" {
		t.Errorf("SortBy = %q, want created_at", f.SortBy)
	}
	if f.SortDir != "desc" {
		t.Errorf("SortDir = %q, want desc", f.SortDir)
	}
	if f.Limit != 20 || f.Offset != 0 {
		t.Errorf("Limit/Offset = %d/%d, want 20/0", f.Limit, f.Offset)
	}

	// Geçerli değerler olduğu gibi kalır
	f = UserListFilter{SortBy: "username", SortDir: "asc", Limit: 50, Offset: 10}
	f.Normalize()
	if f.SortBy != "username" || f.SortDir != "asc" || f.Limit != 50 || f.Offset != 10 {
		t.Errorf("valid filter was mangled: %+v", f)
	}
}

func TestUserPublic(t *testing.T) {
	t.Parallel()

	bio := "ev yemekleri"
	u := User{ID: 5, Username: "ayse", Email: "ayse@example.com", Bio: &bio, IsAdmin: true}
	p := u.Public()

	if p.ID != 5 || p.Username != "ayse" || p.Bio != &bio {
		t.Errorf("public profile fields wrong: %+v", p)
	}
}

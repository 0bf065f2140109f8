package models

import "testing"

func TestBeforeSaveHashesPassword(t *testing.T) {
	u := User{Email: "test@example.com", Password: "plaintext1", Name: "Test"}

	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if u.Password == "plaintext1" {
		t.Fatal("password left in plaintext")
	}
	if err := u.ValidatePassword("plaintext1"); err != nil {
		t.Errorf("hash does not verify original password: %v", err)
	}
	if err := u.ValidatePassword("wrong"); err == nil {
		t.Error("wrong password must not verify")
	}
}

func TestBeforeSaveDoesNotDoubleHash(t *testing.T) {
	u := User{Email: "test@example.com", Password: "plaintext1", Name: "Test"}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	hashed := u.Password

	// A later save of the same row must keep the stored hash intact.
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if u.Password != hashed {
		t.Error("stored hash was re-hashed on save")
	}
	if err := u.ValidatePassword("plaintext1"); err != nil {
		t.Errorf("password no longer verifies after re-save: %v", err)
	}
}

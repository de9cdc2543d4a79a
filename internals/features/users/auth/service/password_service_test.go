package service

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("password tersimpan plaintext")
	}

	if err := CheckPasswordHash(hash, "password123"); err != nil {
		t.Fatalf("CheckPasswordHash dengan password benar: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah-total"); err == nil {
		t.Fatal("password salah lolos verifikasi")
	}
}

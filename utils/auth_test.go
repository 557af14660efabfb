package utils

import "testing"

func TestHashPasswordProducesDistinctSaltedHashes(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	first, err := HashPassword("abc123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("abc123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}

	if !CheckPasswordHash("abc123", first) {
		t.Error("first hash should verify")
	}
	if !CheckPasswordHash("abc123", second) {
		t.Error("second hash should verify")
	}
	if CheckPasswordHash("wrong", first) {
		t.Error("wrong password should not verify")
	}
}

func TestCheckPasswordHashMalformedInput(t *testing.T) {
	if CheckPasswordHash("abc123", "not-a-bcrypt-hash") {
		t.Error("malformed hash should verify false, not panic")
	}
	if CheckPasswordHash("abc123", "") {
		t.Error("empty hash should verify false")
	}
	if CheckPasswordHash("", "") {
		t.Error("empty everything should verify false")
	}
}

func TestBcryptCostBounds(t *testing.T) {
	t.Setenv("BCRYPT_COST", "999")
	if got := bcryptCost(); got != defaultBcryptCost {
		t.Errorf("out-of-range cost should fall back to default, got %d", got)
	}

	t.Setenv("BCRYPT_COST", "10")
	if got := bcryptCost(); got != 10 {
		t.Errorf("expected cost 10, got %d", got)
	}
}

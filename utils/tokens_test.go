package utils

import (
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateToken(t *testing.T) {
	token := GenerateToken()

	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars (256 bits), got %d", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := GenerateToken()
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestGenerateGuid(t *testing.T) {
	guid := GenerateGuid()

	parsed, err := uuid.Parse(guid)
	if err != nil {
		t.Fatalf("guid is not a valid uuid: %v", err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected a v4 uuid, got version %d", parsed.Version())
	}

	if GenerateGuid() == guid {
		t.Error("consecutive guids should differ")
	}
}

func TestValidGridSize(t *testing.T) {
	for _, size := range []int{4, 9, 20} {
		if !ValidGridSize(size) {
			t.Errorf("size %d should be valid", size)
		}
	}
	for _, size := range []int{0, 3, 21, -1} {
		if ValidGridSize(size) {
			t.Errorf("size %d should be invalid", size)
		}
	}
}

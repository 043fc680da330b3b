package hash

import "testing"

func TestBcrypt(t *testing.T) {
	// Arrange
	h := NewBcrypt(4, "pepper")

	// Act
	hashed, err := h.Hash("Secret123!")

	// Assert
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !h.Verify(string(hashed), "Secret123!") {
		t.Error("Verify() = false for matching plaintext")
	}
	if h.Verify(string(hashed), "WrongPassword") {
		t.Error("Verify() = true for wrong plaintext")
	}
}

func TestBcrypt_PepperMismatch(t *testing.T) {
	// Arrange
	h := NewBcrypt(4, "pepper")
	other := NewBcrypt(4, "different")

	// Act
	hashed, err := h.Hash("Secret123!")

	// Assert
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if other.Verify(string(hashed), "Secret123!") {
		t.Error("Verify() = true across different peppers")
	}
}

func TestArgon2id(t *testing.T) {
	// Arrange
	h := NewArgon2id("pepper")

	// Act
	hashed, err := h.Hash("Secret123!")

	// Assert
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !h.Verify(string(hashed), "Secret123!") {
		t.Error("Verify() = false for matching plaintext")
	}
	if h.Verify(string(hashed), "WrongPassword") {
		t.Error("Verify() = true for wrong plaintext")
	}
}

func TestArgon2id_RejectsMalformedHash(t *testing.T) {
	// Arrange
	h := NewArgon2id("pepper")

	cases := []struct {
		name   string
		hashed string
	}{
		{"Empty", ""},
		{"NotEncoded", "plain-text"},
		{"WrongAlgorithm", "$argon2i$v=19$m=32768,t=3,p=2$c2FsdA$aGFzaA"},
		{"BadSalt", "$argon2id$v=19$m=32768,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act & Assert
			if h.Verify(tc.hashed, "Secret123!") {
				t.Error("Verify() = true for malformed hash")
			}
		})
	}
}

package service

import "testing"

func TestHashPassword_UniqueDigests(t *testing.T) {
	first, err := hashPassword("hunter2")
	if err != nil {
		t.Fatalf("hashPassword returned error: %v", err)
	}
	second, err := hashPassword("hunter2")
	if err != nil {
		t.Fatalf("hashPassword returned error: %v", err)
	}

	// Random salt: identical inputs must not produce identical digests.
	if first == second {
		t.Error("two digests of the same password are identical")
	}
	if !verifyPassword(first, "hunter2") || !verifyPassword(second, "hunter2") {
		t.Error("digest does not verify against its own password")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, err := hashPassword("hunter2")
	if err != nil {
		t.Fatalf("hashPassword returned error: %v", err)
	}
	if verifyPassword(digest, "hunter3") {
		t.Error("wrong password verified")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if verifyPassword("not-a-bcrypt-digest", "anything") {
		t.Error("malformed digest verified")
	}
}

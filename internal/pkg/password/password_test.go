package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify("correct horse battery", hash) {
		t.Error("Verify rejected the right password")
	}
	if Verify("wrong password", hash) {
		t.Error("Verify accepted the wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ")
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("accepted a password below the minimum length")
	}
	if !ValidatePassword("12345678") {
		t.Error("rejected a password at the minimum length")
	}
}

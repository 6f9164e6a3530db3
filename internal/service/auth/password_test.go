package auth

import "testing"

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(4) // low cost keeps the test fast

	digest, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest equals plaintext")
	}

	if !h.Verify("correct horse battery staple", digest) {
		t.Error("Verify(plaintext, digest) = false, want true")
	}
	if h.Verify("wrong password", digest) {
		t.Error("Verify(wrong, digest) = true, want false")
	}
}

func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewHasher(4)

	first, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same plaintext are identical, want random salt")
	}
	if !h.Verify("same input", first) || !h.Verify("same input", second) {
		t.Error("both digests should verify against the plaintext")
	}
}

func TestHasher_VerifyGarbageDigest(t *testing.T) {
	h := NewHasher(4)
	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Error("Verify with malformed digest = true, want false")
	}
}

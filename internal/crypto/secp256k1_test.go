package crypto_test

import (
	"errors"
	"testing"

	"keywarden/internal/crypto"
	"keywarden/internal/domain"
)

func TestSignRecover_RoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	hash := crypto.Keccak256([]byte("round trip"))

	sig := crypto.Sign(priv, hash)
	if len(sig) != domain.SignatureLength {
		t.Fatalf("want %d-byte signature, got %d", domain.SignatureLength, len(sig))
	}

	recovered, err := crypto.RecoverAddress(hash, sig)
	if err != nil {
		t.Fatalf("RecoverAddress: %v", err)
	}
	if recovered != crypto.KeyAddress(priv) {
		t.Fatalf("recovered %s, want %s", recovered, crypto.KeyAddress(priv))
	}
}

func TestRecoverAddress_AcceptsBothRecoveryIDForms(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	hash := crypto.Keccak256([]byte("recovery id forms"))
	sig := crypto.Sign(priv, hash)

	// Normalize v from 27/28 to 0/1; recovery must still succeed.
	lowered := append([]byte(nil), sig...)
	lowered[domain.SignatureLength-1] -= 27

	for _, s := range [][]byte{sig, lowered} {
		recovered, err := crypto.RecoverAddress(hash, s)
		if err != nil {
			t.Fatalf("RecoverAddress: %v", err)
		}
		if recovered != crypto.KeyAddress(priv) {
			t.Fatalf("recovered %s, want %s", recovered, crypto.KeyAddress(priv))
		}
	}
}

func TestRecoverAddress_Malformed(t *testing.T) {
	hash := crypto.Keccak256([]byte("malformed"))

	cases := map[string][]byte{
		"nil":       nil,
		"short":     make([]byte, 64),
		"long":      make([]byte, 66),
		"bad recid": func() []byte { b := make([]byte, 65); b[64] = 9; return b }(),
	}
	for name, sig := range cases {
		if _, err := crypto.RecoverAddress(hash, sig); !errors.Is(err, domain.ErrMalformedSignature) {
			t.Fatalf("%s: want ErrMalformedSignature, got %v", name, err)
		}
	}
}

func TestRecoverAddress_DifferentHashDifferentSigner(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sig := crypto.Sign(priv, crypto.Keccak256([]byte("signed message")))

	recovered, err := crypto.RecoverAddress(crypto.Keccak256([]byte("other message")), sig)
	if err == nil && recovered == crypto.KeyAddress(priv) {
		t.Fatal("signature verified against a hash it never signed")
	}
}

func TestKeccak256_Concatenates(t *testing.T) {
	joined := crypto.Keccak256([]byte("ab"), []byte("cd"))
	whole := crypto.Keccak256([]byte("abcd"))
	if joined != whole {
		t.Fatal("Keccak256 over parts differs from digest of concatenation")
	}
}

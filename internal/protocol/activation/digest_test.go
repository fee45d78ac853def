package activation_test

import (
	"errors"
	"testing"

	"keywarden/internal/crypto"
	"keywarden/internal/domain"
	"keywarden/internal/protocol/activation"
)

func addr(last byte) domain.Address {
	var a domain.Address
	a[domain.AddressLength-1] = last
	return a
}

func TestDigest_Deterministic(t *testing.T) {
	target := addr(0xAA)
	ctxID := domain.ContextID("deployment-1")

	if activation.Digest(target, ctxID) != activation.Digest(target, ctxID) {
		t.Fatal("digest is not deterministic")
	}
}

func TestDigest_DomainSeparation(t *testing.T) {
	base := activation.Digest(addr(0xAA), "deployment-1")

	if activation.Digest(addr(0xBB), "deployment-1") == base {
		t.Fatal("digest ignores the target address")
	}
	if activation.Digest(addr(0xAA), "deployment-2") == base {
		t.Fatal("digest ignores the context id")
	}
}

func TestSigningHash_DiffersFromDigest(t *testing.T) {
	digest := activation.Digest(addr(0xAA), "deployment-1")
	if activation.SigningHash(digest) == digest {
		t.Fatal("personal-message wrapping left the digest unchanged")
	}
}

func TestSignRecoverSigner_RoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	target := addr(0xAA)
	ctxID := domain.ContextID("deployment-1")

	sig := activation.Sign(priv, target, ctxID)
	signer, err := activation.RecoverSigner(target, ctxID, sig)
	if err != nil {
		t.Fatalf("RecoverSigner: %v", err)
	}
	if signer != crypto.KeyAddress(priv) {
		t.Fatalf("recovered %s, want %s", signer, crypto.KeyAddress(priv))
	}
}

func TestRecoverSigner_ContextBound(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	target := addr(0xAA)
	sig := activation.Sign(priv, target, "deployment-1")

	// Replaying the signature under another deployment must not recover the
	// same signer.
	signer, err := activation.RecoverSigner(target, "deployment-2", sig)
	if err == nil && signer == crypto.KeyAddress(priv) {
		t.Fatal("signature replayed across deployment contexts")
	}
}

func TestRecoverSigner_Malformed(t *testing.T) {
	if _, err := activation.RecoverSigner(addr(0xAA), "deployment-1", []byte("junk")); !errors.Is(err, domain.ErrMalformedSignature) {
		t.Fatalf("want ErrMalformedSignature, got %v", err)
	}
}

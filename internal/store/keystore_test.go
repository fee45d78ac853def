package store_test

import (
	"testing"

	"keywarden/internal/crypto"
	"keywarden/internal/domain"
	"keywarden/internal/store"
)

func TestKeyStore_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ks domain.KeyStore = store.NewFileKeyStore(home)

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if err := ks.SaveKey(pass, priv); err != nil {
		t.Fatalf("save key: %v", err)
	}

	got, ok, err := ks.LoadKey(pass, crypto.KeyAddress(priv))
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if !ok {
		t.Fatal("key not found after save")
	}
	if got != priv {
		t.Fatal("mismatch after load")
	}
}

func TestKeyStore_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ks domain.KeyStore = store.NewFileKeyStore(home)

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if err := ks.SaveKey("correct", priv); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if _, _, err := ks.LoadKey("wrong", crypto.KeyAddress(priv)); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestKeyStore_MissingKey(t *testing.T) {
	home := t.TempDir()
	var ks domain.KeyStore = store.NewFileKeyStore(home)

	_, ok, err := ks.LoadKey("pass", domain.Address{1})
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if ok {
		t.Fatal("found a key in an empty store")
	}
}

func TestKeyStore_Addresses(t *testing.T) {
	home := t.TempDir()
	pass := "pass"
	var ks domain.KeyStore = store.NewFileKeyStore(home)

	want := make(map[domain.Address]bool)
	for range 3 {
		priv, err := crypto.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		if err := ks.SaveKey(pass, priv); err != nil {
			t.Fatalf("save key: %v", err)
		}
		want[crypto.KeyAddress(priv)] = true
	}

	addrs, err := ks.Addresses(pass)
	if err != nil {
		t.Fatalf("addresses: %v", err)
	}
	if len(addrs) != len(want) {
		t.Fatalf("want %d addresses, got %d", len(want), len(addrs))
	}
	for _, addr := range addrs {
		if !want[addr] {
			t.Fatalf("unexpected address %s", addr)
		}
	}
}

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"keywarden/internal/crypto"
	"keywarden/internal/domain"
	"keywarden/internal/util/memzero"
)

const keysFilename = "keys.json.enc"

// FileKeyStore persists local signing keys on disk, encrypted with a
// passphrase.
type FileKeyStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileKeyStore returns a FileKeyStore rooted at dir.
func NewFileKeyStore(dir string) *FileKeyStore {
	return &FileKeyStore{dir: dir}
}

// SaveKey stores priv under its derived address.
func (s *FileKeyStore) SaveKey(passphrase string, priv domain.SecpPrivateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load(passphrase)
	if err != nil {
		return err
	}
	keys[crypto.KeyAddress(priv).Hex()] = priv.Slice()
	return s.save(passphrase, keys)
}

// LoadKey returns the private key whose derived address is addr.
func (s *FileKeyStore) LoadKey(passphrase string, addr domain.Address) (domain.SecpPrivateKey, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load(passphrase)
	if err != nil {
		return domain.SecpPrivateKey{}, false, err
	}
	raw, ok := keys[addr.Hex()]
	if !ok {
		return domain.SecpPrivateKey{}, false, nil
	}
	var priv domain.SecpPrivateKey
	copy(priv[:], raw)
	memzero.Zero(raw)
	return priv, true, nil
}

// Addresses lists the derived addresses of all stored keys, sorted.
func (s *FileKeyStore) Addresses(passphrase string) ([]domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load(passphrase)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Address, 0, len(keys))
	for hexAddr := range keys {
		addr, err := domain.ParseAddress(hexAddr)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hex() < out[j].Hex() })
	return out, nil
}

func (s *FileKeyStore) load(passphrase string) (map[string][]byte, error) {
	keys := make(map[string][]byte)
	b, err := os.ReadFile(filepath.Join(s.dir, keysFilename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return keys, nil
		}
		return nil, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(pt, &keys); err != nil {
		return nil, err
	}
	memzero.Zero(pt)
	return keys, nil
}

func (s *FileKeyStore) save(passphrase string, keys map[string][]byte) error {
	raw, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, keysFilename), ct, 0o600)
}

// Compile-time assertion that FileKeyStore implements domain.KeyStore.
var _ domain.KeyStore = (*FileKeyStore)(nil)

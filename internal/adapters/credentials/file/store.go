package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	"github.com/gofrs/flock"
)

const (
	storeDirMode    = 0o700
	tokenFileMode   = 0o600
	tempFilePattern = ".tokens-*.json.tmp"
	lockSuffix      = ".lock"
	lockRetryDelay  = 50 * time.Millisecond
)

// tokenFile is the on-disk layout shared with earlier clients.
type tokenFile struct {
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`
	BaseURL           string `json:"base_url"`
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns ok=false for a missing or incomplete file. A file that exists
// but cannot be read or decoded is also reported as absent, together with the
// error so the caller can log it.
func (s *Store) Load(ctx context.Context) (domain.Credential, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credential{}, false, nil
		}
		return domain.Credential{}, false, domain.NewStorageError("read token file", err)
	}

	var decoded tokenFile
	if err := json.Unmarshal(data, &decoded); err != nil {
		return domain.Credential{}, false, domain.NewStorageError("decode token file", err)
	}

	cred := domain.Credential{
		AccessToken:       strings.TrimSpace(decoded.AccessToken),
		AccessTokenSecret: strings.TrimSpace(decoded.AccessTokenSecret),
		BaseURL:           strings.TrimSpace(decoded.BaseURL),
	}
	if !cred.Complete() {
		return domain.Credential{}, false, nil
	}

	return cred, true, nil
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cred.Complete() {
		return domain.NewStorageError("refuse to save credential", domain.ErrIncompleteCredential)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return domain.NewStorageError("create token directory", err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(tokenFile{
		AccessToken:       cred.AccessToken,
		AccessTokenSecret: cred.AccessTokenSecret,
		BaseURL:           cred.BaseURL,
	}, "", "  ")
	if err != nil {
		return domain.NewStorageError("encode token file", err)
	}

	if err := s.writeAtomic(data); err != nil {
		return domain.NewStorageError("write token file", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.NewStorageError("delete token file", err)
	}

	return nil
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	fileLock := flock.New(s.path + lockSuffix)
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, domain.NewStorageError("lock token file", err)
	}
	if !locked {
		return nil, domain.NewStorageError("lock token file", fmt.Errorf("lock %s not acquired", fileLock.Path()))
	}

	return func() { _ = fileLock.Unlock() }, nil
}

func (s *Store) writeAtomic(data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp token file: %w", err)
	}

	if err := tempFile.Chmod(tokenFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	cleanup = false

	return nil
}

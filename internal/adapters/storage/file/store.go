package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mallcloud/mallctl/internal/ports"
)

const (
	storeDirMode  = 0o700
	entryFileMode = 0o600
	tempPattern   = ".entry-*.json.tmp"
)

// Store is a durable string-keyed store holding one JSON document per key,
// each in its own file under root. Writes go through a temp file and rename
// so a crash never leaves a half-written entry behind.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.KVStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("entry %q: %w", key, ports.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("read entry %q: %w", key, err)
	}

	return data, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("create temp entry file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(value); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp entry file: %w", err)
	}

	if err := tempFile.Chmod(entryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp entry file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp entry file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace entry %q: %w", key, err)
	}

	cleanup = false

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete entry %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("storage key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	return filepath.Join(s.root, cleaned+".json"), nil
}

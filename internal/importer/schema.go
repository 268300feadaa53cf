package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/workcounter/internal/repository"
)

// StoreFile is the JSON store layout written by the legacy desktop app:
// one top-level key per ledger document.
type StoreFile map[string]json.RawMessage

// LoadStoreFile reads and parses a JSON store file.
func LoadStoreFile(path string) (StoreFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	var f StoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing store file: %w", err)
	}
	return f, nil
}

// KV copies the ledger documents of f into a fresh in-memory KVRepo. Keys
// other than the ledger keys are dropped.
func (f StoreFile) KV(ctx context.Context) (*repository.MemoryKVRepo, error) {
	kv := repository.NewMemoryKVRepo()
	for _, key := range repository.LedgerKeys {
		raw, ok := f[key]
		if !ok {
			continue
		}
		if err := kv.Put(ctx, key, raw); err != nil {
			return nil, err
		}
	}
	return kv, nil
}

// StoreFileFromKV collects the ledger documents present in kv.
func StoreFileFromKV(ctx context.Context, kv repository.KVRepo) (StoreFile, error) {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return nil, err
	}

	f := make(StoreFile, len(keys))
	for _, key := range keys {
		raw, err := kv.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		f[key] = raw
	}
	return f, nil
}

// Write stores f at path. The file is written next to its destination and
// renamed into place so a failed write never truncates an existing store.
func (f StoreFile) Write(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".workcounter-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}

package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Store manages the single wallet file on disk.
type Store struct {
	path string
	link func(oldname, newname string) error
}

// NewStore creates a store for the wallet file at path.
// The file itself is not touched until Read, Save or Create is called.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("wallet path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve wallet path: %w", err)
	}
	return &Store{path: abs, link: os.Link}, nil
}

// Path returns the absolute wallet file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored record.
// It returns ErrNotFound if no file exists, and a *CorruptError if the file
// exists but cannot be read, parsed or validated.
func (s *Store) Read() (*types.WalletRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &CorruptError{Path: s.path, Err: fmt.Errorf("read wallet: %w", err)}
	}

	r, err := decodeRecord(data)
	if err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	return r, nil
}

func decodeRecord(data []byte) (*types.WalletRecord, error) {
	// Editors on Windows may prepend a BOM.
	data = bytes.TrimPrefix(data, utf8BOM)

	var r types.WalletRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("validate wallet: %w", err)
	}
	return &r, nil
}

// Load is the fail-soft variant of Read: any failure is reported as absent.
func (s *Store) Load() (*types.WalletRecord, bool) {
	r, err := s.Read()
	if err != nil {
		return nil, false
	}
	return r, true
}

// Save writes the record, replacing any existing file.
// The file is replaced atomically: readers see either the old or the new content.
func (s *Store) Save(r types.WalletRecord) error {
	data, err := encodeRecord(r)
	if err != nil {
		return err
	}
	tmp, err := s.writeTemp(data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write wallet: %w", err)
	}
	klog.Store.Debug().Str("path", s.path).Msg("wallet saved")
	return nil
}

// Create writes the record only if no wallet file exists yet.
// It returns ErrExists, leaving the present file untouched, otherwise.
func (s *Store) Create(r types.WalletRecord) error {
	data, err := encodeRecord(r)
	if err != nil {
		return err
	}
	tmp, err := s.writeTemp(data)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	// Link fails if the target exists, so two first runs cannot both win.
	err = s.link(tmp, s.path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrExist):
		return ErrExists
	case errors.Is(err, errors.ErrUnsupported), errors.Is(err, fs.ErrPermission):
		// No hard links on this filesystem (FAT, some network mounts).
		klog.Store.Debug().Err(err).Str("path", s.path).Msg("hard link unavailable, using exclusive create")
		if err := s.createExclusive(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("write wallet: %w", err)
	}
	klog.Store.Debug().Str("path", s.path).Msg("wallet created")
	return nil
}

// createExclusive writes data with O_EXCL directly to the wallet path.
func (s *Store) createExclusive(data []byte) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return fmt.Errorf("write wallet: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(s.path)
		return fmt.Errorf("write wallet: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(s.path)
		return fmt.Errorf("write wallet: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(s.path)
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

// Quarantine moves an unusable wallet file aside and returns its new path.
//
// The file is checked again after the move. If it turns out to hold a valid
// record, another process replaced the corrupt file in the meantime: the
// record is put back and ErrNotCorrupt is returned.
func (s *Store) Quarantine() (string, error) {
	dst := s.quarantinePath()
	if err := os.Rename(s.path, dst); err != nil {
		return "", fmt.Errorf("quarantine wallet: %w", err)
	}

	data, err := os.ReadFile(dst)
	if err == nil {
		if _, derr := decodeRecord(data); derr == nil {
			s.restore(dst)
			return "", ErrNotCorrupt
		}
	}

	klog.Store.Warn().Str("path", s.path).Str("moved_to", dst).Msg("unusable wallet file moved aside")
	return dst, nil
}

// quarantinePath returns an unused <path>.corrupt-<unixnano>[-n] name.
func (s *Store) quarantinePath() string {
	base := fmt.Sprintf("%s.corrupt-%d", s.path, time.Now().UnixNano())
	dst := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(dst); err != nil {
			return dst
		}
		dst = fmt.Sprintf("%s-%d", base, i)
	}
}

// restore puts a valid record moved by Quarantine back in place. If the
// wallet path has been taken again, the moved file is left where it is.
func (s *Store) restore(moved string) {
	if err := s.link(moved, s.path); err != nil {
		if errors.Is(err, errors.ErrUnsupported) || errors.Is(err, fs.ErrPermission) {
			err = renameIfAbsent(moved, s.path)
			if err == nil {
				return
			}
		}
		klog.Store.Warn().Err(err).Str("path", moved).Msg("valid wallet left aside, wallet path already taken")
		return
	}
	os.Remove(moved)
}

func renameIfAbsent(oldname, newname string) error {
	if _, err := os.Lstat(newname); err == nil {
		return fs.ErrExist
	}
	return os.Rename(oldname, newname)
}

func encodeRecord(r types.WalletRecord) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wallet record: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal wallet: %w", err)
	}
	return data, nil
}

// writeTemp writes data into a synced temp file next to the wallet file and
// returns its path.
func (s *Store) writeTemp(data []byte) (string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create wallet dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("write wallet: %w", err)
	}
	tmp := f.Name()
	fail := func(err error) (string, error) {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("write wallet: %w", err)
	}

	if err := f.Chmod(0600); err != nil {
		return fail(err)
	}
	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write wallet: %w", err)
	}
	return tmp, nil
}

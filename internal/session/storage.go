package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"hrmclient/internal/domain/auth"
)

// State is the durable mirror of the session, written on every mutation and
// hydrated once at startup.
type State struct {
	User  *auth.User `json:"user"`
	Token string     `json:"token"`
}

// Storage persists session state across restarts.
type Storage interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// FileStorage keeps the session under the state dir, mirroring the browser
// client's localStorage entry. Mode 0600: the file holds a bearer token.
type FileStorage struct {
	path string
}

func NewFileStorage(stateDir string) *FileStorage {
	return &FileStorage{path: filepath.Join(stateDir, "session.json")}
}

func (s *FileStorage) Load() (State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, nil
		}
		return State{}, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt session file is treated as no session.
		return State{}, nil
	}
	return state, nil
}

func (s *FileStorage) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is the test double.
type MemoryStorage struct {
	state State
	saved bool
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (s *MemoryStorage) Load() (State, error) { return s.state, nil }

func (s *MemoryStorage) Save(state State) error {
	s.state = state
	s.saved = true
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.state = State{}
	s.saved = false
	return nil
}

// HasSession reports whether a save is currently persisted (tests).
func (s *MemoryStorage) HasSession() bool { return s.saved && s.state.Token != "" }

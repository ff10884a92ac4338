// Package auth manages user registration and authentication over a flat
// credentials store. It is a collaborator of the wallet ledger, not part of
// it: the ledger only ever sees the principal name auth hands out.
package auth

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is reported when registering a name that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrBadCredentials is reported for an unknown user or a wrong
	// password, without telling which.
	ErrBadCredentials = errors.New("invalid user name or password")
)

// User is one persisted credential record. The json tags are the stable
// store identifiers.
type User struct {
	Name string `json:"user"`
	Hash string `json:"password"` // bcrypt hash, never the plaintext
}

// Registry reads and writes the credentials store as one durable unit, with
// the same leniency as the wallet store: absent or unreadable content is an
// empty registry.
type Registry struct {
	path string
}

// NewRegistry returns a registry backed by the given file path.
func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

// Register creates a new user with a bcrypt hash of the password.
func (r *Registry) Register(name, password string) error {
	if name == "" {
		return fmt.Errorf("user name must not be empty")
	}
	users, err := r.loadAll()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Name == name {
			return fmt.Errorf("%w: %q", ErrUserExists, name)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	users = append(users, User{Name: name, Hash: string(hash)})
	return r.saveAll(users)
}

// Authenticate verifies name and password and returns the principal name.
func (r *Registry) Authenticate(name, password string) (string, error) {
	users, err := r.loadAll()
	if err != nil {
		return "", err
	}
	for _, u := range users {
		if u.Name != name {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
			return "", ErrBadCredentials
		}
		return u.Name, nil
	}
	return "", ErrBadCredentials
}

func (r *Registry) loadAll() ([]User, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open users store %q: %w", r.path, err)
	}
	defer f.Close()

	users, err := decodeUsers(f)
	if err != nil {
		log.Printf("warning: discarding unreadable users store %q: %v", r.path, err)
		return nil, nil
	}
	return users, nil
}

func (r *Registry) saveAll(users []User) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for users store %q: %w", r.path, err)
		}
	}
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("could not open users store %q for writing: %w", r.path, err)
	}
	defer f.Close()

	for _, u := range users {
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("could not marshal user %q: %w", u.Name, err)
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("could not write users store %q: %w", r.path, err)
		}
	}
	return nil
}

func decodeUsers(r io.Reader) ([]User, error) {
	var users []User
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var u User
		if err := json.Unmarshal(line, &u); err != nil {
			return nil, fmt.Errorf("could not decode user line %q: %w", string(line), err)
		}
		users = append(users, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return users, nil
}

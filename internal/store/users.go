package store

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Users is the user collection plus the email natural key and password
// handling. Passwords are accepted in payloads under "password", stored as
// bcrypt hashes and never returned.
type Users struct {
	items *Collection[User, *User]

	// mu serialises writes that touch the email key so the duplicate check
	// and the insert happen as one step.
	mu   sync.Mutex
	cost int
}

func newUsers(cost int) *Users {
	c := NewCollection[User]("User", "email", "name", "password")
	c.writeOnly["password"] = struct{}{}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Users{items: c, cost: cost}
}

func (u *Users) Kind() string { return u.items.Kind() }

func (u *Users) Len() int { return u.items.Len() }

// List returns users in insertion order. A nil keep returns all.
func (u *Users) List(keep func(*User) bool) []*User { return u.items.List(keep) }

func (u *Users) Get(id int64) (*User, error) { return u.items.Get(id) }

func (u *Users) Delete(id int64) error { return u.items.Delete(id) }

// Register creates a user, rejecting an email that is already taken.
func (u *Users) Register(fields map[string]any) (*User, error) {
	if missing := missingFields(fields, u.items.required); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	email, ok := fields["email"].(string)
	if !ok {
		return nil, &ValidationError{Fields: []string{"email"}, Reason: "email must be a string"}
	}
	hash, err := u.hash(fields["password"])
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if _, found := u.FindByEmail(email); found {
		return nil, &ConflictError{Kind: u.items.kind, Field: "email", Value: email}
	}
	return u.items.CreateWith(fields, func(usr *User) error {
		usr.PasswordHash = hash
		return nil
	})
}

// Update merges patch onto a user. email and name cannot be emptied, a new
// "password" is re-hashed and a new "email" must not belong to another user.
func (u *Users) Update(id int64, patch map[string]any) (*User, error) {
	for _, name := range []string{"email", "name"} {
		if _, ok := patch[name]; ok && len(missingFields(patch, []string{name})) > 0 {
			return nil, &ValidationError{Fields: []string{name}, Reason: name + " must not be empty"}
		}
	}

	var hash string
	if raw, ok := patch["password"]; ok && raw != nil {
		h, err := u.hash(raw)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if raw, ok := patch["email"]; ok {
		email, isStr := raw.(string)
		if !isStr {
			return nil, &ValidationError{Fields: []string{"email"}, Reason: "email must be a string"}
		}
		if other, found := u.FindByEmail(email); found && other.ID != id {
			return nil, &ConflictError{Kind: u.items.kind, Field: "email", Value: email}
		}
	}
	return u.items.UpdateWith(id, patch, func(usr *User) error {
		if hash != "" {
			usr.PasswordHash = hash
		}
		return nil
	})
}

// FindByEmail is a case-sensitive exact match on email.
func (u *Users) FindByEmail(email string) (*User, bool) {
	found := u.List(func(usr *User) bool { return usr.Email == email })
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// Authenticate returns the user whose email and password both match, or
// ErrInvalidCredentials.
func (u *Users) Authenticate(email, password string) (*User, error) {
	usr, ok := u.FindByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return usr, nil
}

// Ensure registers email with password unless a user with that email
// exists already. It reports whether a user was created.
func (u *Users) Ensure(email, name, password string) (*User, bool, error) {
	if usr, ok := u.FindByEmail(email); ok {
		return usr, false, nil
	}
	usr, err := u.Register(map[string]any{"email": email, "name": name, "password": password})
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		usr, _ = u.FindByEmail(email)
		return usr, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return usr, true, nil
}

func (u *Users) hash(raw any) (string, error) {
	password, ok := raw.(string)
	if !ok || password == "" {
		return "", &ValidationError{Fields: []string{"password"}, Reason: "password must be a non-empty string"}
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &ValidationError{Fields: []string{"password"}, Reason: "password must be at most 72 bytes"}
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

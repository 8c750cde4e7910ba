package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user account of the service.
// The plaintext password only ever transits through the Password field
// during creation or rotation; it is hashed before the account is persisted
// and is never stored or serialized.
type Account struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, transient; hashed before storage
	HashedPassword string    `json:"-"` // Never expose the credential hash
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount creates a new Account with the given display name, username and
// plaintext password. It assigns a fresh UUID and sets the timestamps.
// The caller is responsible for hashing the password before storing the account.
// Returns an error if validation fails.
func NewAccount(displayName, username, password string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:          uuid.New(),
		DisplayName: displayName,
		Username:    username,
		Password:    password,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks that the Account holds consistent data.
// A whitespace-only password counts as empty; accounts loaded from the store
// carry no plaintext password and must have a credential hash instead.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	if strings.TrimSpace(a.Password) == "" {
		if a.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

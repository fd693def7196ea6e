// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/crowdcheck/models"
)

// SignUp creates an account with a bcrypt password hash. Emails are
// stored lowercased. A taken email comes back as ErrDuplicate.
func (s *Store) SignUp(email, password string, isAdmin bool) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	acct := models.Account{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO account (id, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, acct.ID, acct.Email, string(acct.PasswordHash), acct.IsAdmin, acct.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrDuplicate
		}
		return models.Account{}, err
	}
	return acct, nil
}

// SignIn checks email and password. Unknown email and wrong password are
// indistinguishable to the caller: both are ErrInvalidCredentials.
func (s *Store) SignIn(email, password string) (models.Account, error) {
	var acct models.Account
	var hash string
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, is_admin, created_at
		FROM account
		WHERE email = $1
	`, strings.ToLower(email)).Scan(&acct.ID, &acct.Email, &hash, &acct.IsAdmin, &acct.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	acct.PasswordHash = []byte(hash)
	return acct, nil
}

// ListAccounts returns all accounts for the admin page, newest first.
// Password hashes are not selected.
func (s *Store) ListAccounts() ([]models.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, email, is_admin, created_at
		FROM account
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var acct models.Account
		if err := rows.Scan(&acct.ID, &acct.Email, &acct.IsAdmin, &acct.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, rows.Err()
}

// GrantAdmin sets the admin flag on an existing account. This is the only
// path that elevates a session after the registration-time bootstrap.
func (s *Store) GrantAdmin(accountID string) error {
	res, err := s.db.Exec(`
		UPDATE account SET is_admin = TRUE WHERE id = $1
	`, accountID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

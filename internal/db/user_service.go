package db

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/validate"
)

// CreateUser registers a new account with a bcrypt-hashed password.
func CreateUser(firstName, lastName, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, validate.Error("Email is required")
	}
	if len(password) < 8 {
		return nil, validate.Error("Password must be at least 8 characters")
	}

	var existing models.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, validate.Error("An account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: string(hashed),
	}

	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// localUserEmail marks the implicit account used when the CLI runs against
// the local database instead of a server.
const localUserEmail = "local@giglog.local"

// LocalUser returns the implicit local-mode account, creating it on first
// use. The account gets a random password because nothing ever logs in to it.
func LocalUser() (*models.User, error) {
	var user models.User
	err := DB.Where("email = ?", localUserEmail).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	return CreateUser("Local", "User", localUserEmail, hex.EncodeToString(raw))
}

// AuthenticateUser checks credentials and returns the matching user.
// Unknown email and wrong password produce the same error so the login form
// cannot be used to probe for accounts.
func AuthenticateUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validate.Error("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, validate.Error("Invalid email or password")
	}

	return &user, nil
}

// IssueToken creates a new opaque bearer token for a user.
func IssueToken(userID string) (*models.AuthToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	token := models.AuthToken{
		Token:    hex.EncodeToString(raw),
		UserID:   userID,
		LastUsed: time.Now().UTC(),
	}

	if err := DB.Create(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

// UserForToken resolves a bearer token to its owning user, updating the
// token's last-used timestamp.
func UserForToken(token string) (*models.User, error) {
	var authToken models.AuthToken
	err := DB.Where("token = ?", token).First(&authToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token %w", ErrNotFound)
		}
		return nil, err
	}

	DB.Model(&authToken).Update("last_used", time.Now().UTC())

	var user models.User
	if err := DB.First(&user, "id = ?", authToken.UserID).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// RevokeToken deletes a bearer token. Logging out an already-revoked token is
// a no-op.
func RevokeToken(token string) error {
	return DB.Where("token = ?", token).Delete(&models.AuthToken{}).Error
}

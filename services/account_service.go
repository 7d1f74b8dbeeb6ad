package services

import (
	"errors"
	"strings"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"
	"checkitoff/utils"

	"gorm.io/gorm"
)

// RegisterRequest carries a registration submission.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the account shape returned to clients; it never carries the
// password hash.
type UserSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Access  string `json:"access"`
}

func summarize(u *models.User) UserSummary {
	return UserSummary{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    u.Role,
		Access:  "ROLE_" + strings.ToUpper(u.Role),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Email uniqueness is case-insensitive; the raw
// password is hashed immediately and never stored or logged. The role comes
// from the policy's role rule evaluated with a zero vote count.
func Register(req RegisterRequest, policy Policy) (UserSummary, error) {
	if req.Name == "" {
		return UserSummary{}, apperrors.Validation("name", "name is required")
	}
	if req.Surname == "" {
		return UserSummary{}, apperrors.Validation("surname", "surname is required")
	}
	if req.Email == "" {
		return UserSummary{}, apperrors.Validation("email", "email is required")
	}
	if req.Password == "" {
		return UserSummary{}, apperrors.Validation("password", "password is required")
	}

	email := normalizeEmail(req.Email)

	var count int64
	if err := global.Db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return UserSummary{}, apperrors.Service("failed to check email", err)
	}
	if count > 0 {
		return UserSummary{}, apperrors.Conflict("email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return UserSummary{}, apperrors.Service("failed to hash password", err)
	}

	user := models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    email,
		Password: hash,
		Role:     policy.Role(email, 0),
		Visible:  true,
	}
	if err := global.Db.Create(&user).Error; err != nil {
		return UserSummary{}, apperrors.Service("failed to create user", err)
	}
	return summarize(&user), nil
}

// Authenticate verifies credentials. A missing account and a wrong password
// both come back as the same generic auth error so callers cannot probe which
// emails are registered. On success the role rule is re-evaluated with the
// account's recorded vote count and a Reader promoted to Member is persisted.
func Authenticate(email, rawPassword string, policy Policy) (UserSummary, error) {
	if email == "" || rawPassword == "" {
		return UserSummary{}, apperrors.Validation("credentials", "email and password are required")
	}

	var user models.User
	err := global.Db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserSummary{}, apperrors.Auth()
		}
		return UserSummary{}, apperrors.Service("failed to load user", err)
	}

	if !utils.CheckPassword(rawPassword, user.Password) {
		return UserSummary{}, apperrors.Auth()
	}

	if !user.Visible {
		return UserSummary{}, &apperrors.Error{Kind: apperrors.KindAuth, Message: "account is inactive"}
	}

	if user.Role == models.RoleReader {
		var voteCount int64
		if err := global.Db.Model(&models.Vote{}).
			Where("voter_name = ?", user.Email).
			Count(&voteCount).Error; err == nil {
			if role := policy.Role(user.Email, voteCount); role != user.Role {
				if err := global.Db.Model(&user).Update("role", role).Error; err == nil {
					user.Role = role
				}
			}
		}
	}

	return summarize(&user), nil
}

// GetUserByEmail returns the public identity fields for one account.
func GetUserByEmail(email string) (UserSummary, error) {
	var user models.User
	err := global.Db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserSummary{}, apperrors.NotFound("user not found")
		}
		return UserSummary{}, apperrors.Service("failed to load user", err)
	}
	return summarize(&user), nil
}

// UpdateUserRole sets an account's role to one of the known tiers.
func UpdateUserRole(id uint, role string) (UserSummary, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		role = models.RoleAdmin
	case "member":
		role = models.RoleMember
	case "reader":
		role = models.RoleReader
	default:
		return UserSummary{}, apperrors.Validation("role", "role must be Admin, Member or Reader")
	}

	var user models.User
	if err := global.Db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserSummary{}, apperrors.NotFound("user not found")
		}
		return UserSummary{}, apperrors.Service("failed to load user", err)
	}

	if err := global.Db.Model(&user).Update("role", role).Error; err != nil {
		return UserSummary{}, apperrors.Service("failed to update role", err)
	}
	user.Role = role
	return summarize(&user), nil
}

// SetUserVisibility activates or deactivates an account. Hidden accounts
// cannot log in.
func SetUserVisibility(id uint, visible bool) error {
	var user models.User
	if err := global.Db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Service("failed to load user", err)
	}
	if err := global.Db.Model(&user).Update("visible", visible).Error; err != nil {
		return apperrors.Service("failed to update user visibility", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/darkred-portfolio/backend/internal/cache"
	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/utils"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

const revokedKeyPrefix = "revoked:"

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
	revoked   cache.Cache
}

// NewAuthService keeps revoked token ids in revoked until they expire. A nil
// store disables revocation.
func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig, revoked cache.Cache) *AuthService {
	if revoked == nil {
		revoked = cache.Noop{}
	}
	return &AuthService{
		db:        db,
		jwtConfig: jwtCfg,
		revoked:   revoked,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token    string       `json:"token"`
	ExpireAt time.Time    `json:"expire_at"`
	User     *models.User `json:"user"`
}

func (s *AuthService) expireHours() int {
	if s.jwtConfig.ExpireHour <= 0 {
		return 24
	}
	return s.jwtConfig.ExpireHour
}

// Login authenticates a dashboard user and issues a JWT.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	user, err := s.localAuth(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		return nil, err
	}

	hours := s.expireHours()
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, hours)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(user).UpdateColumn("last_login", now).Error; err != nil {
		logger.Warnf("[Auth] Failed to record last login for %s: %v", user.Username, err)
	}

	return &LoginResult{
		Token:    token,
		ExpireAt: now.Add(time.Duration(hours) * time.Hour),
		User:     user,
	}, nil
}

func (s *AuthService) localAuth(username, password string) (*models.User, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Logout revokes the token described by claims for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoked.SetJSON(ctx, revokedKeyPrefix+claims.ID, true, ttl)
}

func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}
	var revoked bool
	hit, err := s.revoked.GetJSON(ctx, revokedKeyPrefix+tokenID, &revoked)
	return err == nil && hit && revoked
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (s *AuthService) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	if !utils.CheckPassword(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return &models.ValidationError{Field: "new_password", Reason: err.Error()}
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", hashedPassword).Error
}

// EnsureAdmin creates the configured admin account on first boot. Nothing
// happens when an admin already exists or no password is configured.
func (s *AuthService) EnsureAdmin(cfg *config.AdminConfig) error {
	if cfg.Password == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := s.CreateOrResetAdmin(cfg.Username, cfg.Password, cfg.Email)
	if err == nil {
		logger.Infof("[Auth] Created admin user %q", cfg.Username)
	}
	return err
}

// CreateOrResetAdmin creates username as an active admin, or resets the
// password and role of an existing account with that name.
func (s *AuthService) CreateOrResetAdmin(username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &models.ValidationError{Field: "username", Reason: "username is required"}
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, &models.ValidationError{Field: "password", Reason: err.Error()}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Unscoped().Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Username: username,
			Password: hashedPassword,
			Email:    email,
			Nickname: "Administrator",
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]interface{}{
		"password":   hashedPassword,
		"role":       models.RoleAdmin,
		"is_active":  true,
		"deleted_at": nil,
	}
	if email != "" {
		updates["email"] = email
	}
	if err := s.db.Unscoped().Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUserByID(user.ID)
}

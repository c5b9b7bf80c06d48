package services

import (
	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// AuthorizationPolicy decides whether an account holds operator rights.
// Operators manage the shared ledger and see every transaction; everyone else
// only sees their own rows.
type AuthorizationPolicy interface {
	IsOperator(userID uint) bool
}

// ConfigAuthorizationPolicy grants operator rights to accounts carrying the
// operator role and to IDs listed in OPERATOR_USER_IDS. The ID list covers
// deployments that predate the role column.
type ConfigAuthorizationPolicy struct {
	DB        *gorm.DB
	allowlist map[uint]struct{}
}

// NewAuthorizationPolicy creates a config-backed authorization policy.
func NewAuthorizationPolicy(db *gorm.DB, cfg *config.Config) AuthorizationPolicy {
	allow := make(map[uint]struct{}, len(cfg.OperatorUserIDs))
	for _, id := range cfg.OperatorUserIDs {
		allow[id] = struct{}{}
	}
	return &ConfigAuthorizationPolicy{DB: db, allowlist: allow}
}

// IsOperator reports whether the user may act as operator.
func (p *ConfigAuthorizationPolicy) IsOperator(userID uint) bool {
	if _, ok := p.allowlist[userID]; ok {
		return true
	}
	var count int64
	if err := p.DB.Model(&models.User{}).
		Where("id = ? AND role = ?", userID, models.RoleOperator).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// StaticAuthorizationPolicy is an allowlist-only policy used by tests.
type StaticAuthorizationPolicy map[uint]bool

// IsOperator reports whether the user ID is allowlisted.
func (p StaticAuthorizationPolicy) IsOperator(userID uint) bool {
	return p[userID]
}

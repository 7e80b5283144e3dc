// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menampung token yang sudah di-logout sampai kedaluwarsa.
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;primaryKey"`
	TokenBlacklistToken     string    `json:"token_blacklist_token" gorm:"column:token_blacklist_token;type:text;not null;index:idx_token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;not null;index"`
	TokenBlacklistCreatedAt time.Time `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;not null;autoCreateTime"`
}

func (TokenBlacklist) TableName() string { return "token_blacklists" }

func (t *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if t.TokenBlacklistID == uuid.Nil {
		t.TokenBlacklistID = uuid.New()
	}
	return nil
}

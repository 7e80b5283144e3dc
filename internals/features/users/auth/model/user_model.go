// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL users --------------------------------------------------------------
type User struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`

	// Identitas
	UserName  string `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:ux_users_email"`

	// Kredensial (bcrypt hash; kosong untuk akun Google-only)
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(255);not null;default:''"`

	// Role tertutup: admin | staff | tutor | customer (lihat internals/constants)
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'customer';index:idx_users_role"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;type:boolean;not null;default:true"`

	// Timestamps
	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

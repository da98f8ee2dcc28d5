package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the only persisted entity. Email, Code, NUIT and MSISDN carry
// unique indexes: they are the authoritative uniqueness guarantee.
// Rows are never deleted; IsActive=false is the soft-delete marker. It has
// no column default because gorm skips zero values that carry one.
type User struct {
	ID                     string        `gorm:"type:uuid;primaryKey"`
	FullName               string        `gorm:"size:100;not null"`
	Email                  string        `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash           string        `gorm:"column:password;not null"`
	Code                   string        `gorm:"size:20;uniqueIndex;not null"`
	NUIT                   string        `gorm:"column:nuit;size:9;uniqueIndex;not null"`
	MSISDN                 string        `gorm:"column:msisdn;size:9;uniqueIndex;not null"`
	Address                string        `gorm:"size:200;not null"`
	DateOfBirth            *time.Time    `gorm:"type:date"`
	Gender                 *Gender       `gorm:"size:10"`
	Role                   Role          `gorm:"size:20;not null;default:Cliente"`
	Notes                  string        `gorm:"size:500;not null;default:''"`
	IsActive               bool          `gorm:"not null"`
	RegistrationDate       time.Time     `gorm:"not null"`
	Nationality            string        `gorm:"size:50;not null;default:''"`
	MaritalStatus          string        `gorm:"size:30;not null;default:''"`
	Occupation             string        `gorm:"size:50;not null;default:''"`
	PreferredPaymentMethod PaymentMethod `gorm:"size:20;not null;default:''"`
	LoyaltyPoints          int           `gorm:"not null;default:0;check:chk_users_loyalty_points,loyalty_points >= 0"`
	CreatedAt              time.Time     `gorm:"index"`
	UpdatedAt              time.Time
}

func (User) TableName() string { return "users" }

// BeforeCreate assigns the identifier in Go so the schema does not depend on
// a database-side uuid generator.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.RegistrationDate.IsZero() {
		u.RegistrationDate = time.Now()
	}
	return nil
}

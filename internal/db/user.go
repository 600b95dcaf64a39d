package db

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleJudge   = "judge"
	RoleUser    = "user"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:200;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:100;not null"`
	DisplayName  string    `gorm:"size:100;not null"`
	Role         string    `gorm:"size:20;not null;default:'user'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	Models       []Model   `gorm:"foreignKey:OwnerUserID"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff, RoleJudge, RoleUser:
		return true
	}
	return false
}

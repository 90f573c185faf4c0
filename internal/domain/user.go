package domain

import "time"

type UserRole string

const (
	RolePlayer UserRole = "player"
	RoleOwner  UserRole = "owner"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillPro          SkillLevel = "pro"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	SkillLevel   SkillLevel `json:"skill_level"`
	Rating       float64    `json:"rating"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

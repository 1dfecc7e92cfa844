package model

import "time"

// 使用者角色
const (
	RoleGuest = "guest"
	RoleStaff = "staff"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"password_hash"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IsStaff 回傳使用者是否為館方人員
func (u User) IsStaff() bool { return u.Role == RoleStaff }

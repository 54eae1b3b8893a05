package models

import "time"

// User is a staff member. The role gates which operations the transport layer
// lets them invoke; the entity only exposes the capability predicates.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func NewUser(id, name, email, passwordHash string, role UserRole, now time.Time) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u *User) IsWaiter() bool { return u.Role == RoleWaiter }
func (u *User) IsChef() bool   { return u.Role == RoleChef }

// CanManageOrders reports whether the user may create, modify and deliver
// orders.
func (u *User) CanManageOrders() bool {
	return u.Role == RoleAdmin || u.Role == RoleWaiter
}

// CanPrepareOrders reports whether the user may move orders through the
// kitchen pipeline.
func (u *User) CanPrepareOrders() bool {
	return u.Role == RoleAdmin || u.Role == RoleChef
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (u *User) Update(patch UserPatch, now time.Time) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	u.UpdatedAt = now
}

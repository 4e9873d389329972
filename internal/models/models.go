package models

import "time"

const (
	OrderTypeIn  = "IN"
	OrderTypeOut = "OUT"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Department   string    `json:"department"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Department struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkCenter struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductionOrder is immutable once written: no update or delete path
// exists, and historical rows keep referencing soft-deleted work centers
// and users.
type ProductionOrder struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductionOrder string     `gorm:"index;not null" json:"production_order"`
	WorkCenterID    uint       `gorm:"index;not null" json:"workcenter_id"`
	WorkCenter      WorkCenter `json:"workcenter"`
	Quantity        int        `gorm:"not null;default:0" json:"quantity"`
	OrderType       string     `gorm:"not null;size:3" json:"order_type"` // IN or OUT
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	User            User       `json:"user"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Session struct {
	JTI       string     `gorm:"primaryKey;size:64" json:"jti"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"not null" json:"action"`
	Metadata  JSONB     `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

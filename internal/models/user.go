package models

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	Username     string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string   `gorm:"type:varchar(255)" json:"full_name"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`

	// Relations
	Projects      []Project `gorm:"foreignKey:OwnerID" json:"-"`
	AssignedTasks []Task    `gorm:"foreignKey:AssignedToID" json:"-"`
}

package domain

// Role of an account
type Role string

const (
	RoleCustomer Role = "customer" // Files complaints
	RoleAdmin    Role = "admin"    // Reviews and resolves complaints
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Account Model
type Account struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	Username string `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"` // Unique username
	Password string `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	Role     Role   `gorm:"type:varchar(16);not null" json:"role"`                  // Role: customer or admin
}

package domain

// Complaint Model
type Complaint struct {
	ID          uint     `gorm:"primaryKey" json:"id"`                                    // Primary key
	Title       string   `gorm:"type:varchar(255);index" json:"title"`                    // Short summary
	Description string   `gorm:"type:text" json:"description"`                            // Full text
	Resolved    bool     `gorm:"not null;default:false" json:"resolved"`                  // Flips to true once, never back
	CustomerID  uint     `gorm:"not null;index" json:"customer_id"`                       // Foreign key to Account
	Customer    *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"` // Owning account
}

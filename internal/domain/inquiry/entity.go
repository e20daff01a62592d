package inquiry

import "time"

// Inquiry is a contact-form submission. Inquiries are never edited or removed.
type Inquiry struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (Inquiry) TableName() string { return "inquiries" }

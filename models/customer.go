package models

type Customer struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email,omitempty"`
	CreatedAt Instant `json:"createdAt"`
}

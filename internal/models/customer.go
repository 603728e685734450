package models

type Customer struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"index" json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

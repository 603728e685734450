package models

type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `json:"revenue"`
}

package models

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Phone    string `gorm:"size:50;not null" json:"phone"`
	Category string `gorm:"size:100;not null" json:"category"`

	Date Date   `gorm:"type:date;not null" json:"date"`
	Time string `gorm:"size:50;not null" json:"time"`

	Message string `gorm:"size:500" json:"message"`
}

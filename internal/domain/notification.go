package domain

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"userId"`
	Message   string    `gorm:"size:1024;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type VolunteerHistory struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserID           uint   `gorm:"column:user_id;not null;index" json:"userId"`
	EventName        string `gorm:"size:255;not null" json:"eventName"`
	EventDescription string `gorm:"type:text" json:"eventDescription"`
	Location         string `gorm:"size:255" json:"location"`
	Skills           string `gorm:"size:512" json:"skills"`
	Urgency          string `gorm:"size:32" json:"urgency"`
	EventDate        string `gorm:"size:10;not null;index" json:"eventDate"`
}

func (VolunteerHistory) TableName() string { return "volunteer_history" }

package domain

import "time"

type UserProfile struct {
	UserID         uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FullName       string     `gorm:"column:full_name;size:255;not null;default:''" json:"full_name"`
	Username       string     `gorm:"column:username;size:255;not null;default:''" json:"username"`
	ProfilePicture *string    `gorm:"column:profile_picture;size:1024" json:"profile_picture"`
	Address1       string     `gorm:"column:address1;size:255;not null;default:''" json:"address1"`
	Address2       string     `gorm:"column:address2;size:255;not null;default:''" json:"address2"`
	City           string     `gorm:"column:city;size:120;not null;default:''" json:"city"`
	State          string     `gorm:"column:state;size:64;not null;default:''" json:"state"`
	Zipcode        string     `gorm:"column:zipcode;size:16;not null;default:''" json:"zipcode"`
	Skills         StringList `gorm:"column:skills;type:text" json:"skills"`
	Preferences    string     `gorm:"column:preferences;type:text" json:"preferences"`
	Availability   DateList   `gorm:"column:availability;type:text" json:"availability"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// UserCredential shares its primary key with the owning UserProfile.
type UserCredential struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserCredential) TableName() string { return "user_credentials" }

// UserAccount is the merged read view returned by GET /user/{id}.
type UserAccount struct {
	UserProfile
	Email string `json:"email"`
}

// ProfileManagement is a partial update. Nil fields keep the stored value;
// an empty non-nil list clears it.
type ProfileManagement struct {
	FullName     *string
	Address1     *string
	Address2     *string
	City         *string
	State        *string
	Zipcode      *string
	Skills       StringList
	Preferences  *string
	Availability DateList
}

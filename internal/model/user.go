package model

// swagger:model User
type User struct {
	UUIDBase
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Avatar   string `gorm:"size:255" json:"avatar"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile strips everything a client has no business seeing.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":     u.ID,
		"email":  u.Email,
		"name":   u.Name,
		"avatar": u.Avatar,
	}
}

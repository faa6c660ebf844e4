package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:120;unique;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // Don't expose password hash

	// One-to-many relationship with Review
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`

	// Many-to-many relationship with Restaurant through the visits join table
	Restaurants []Restaurant `gorm:"many2many:visits" json:"-"`
}

func (User) TableName() string {
	return "user"
}

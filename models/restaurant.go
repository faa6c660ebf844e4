package models

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Location    string `gorm:"size:200" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:300" json:"image"`

	// One-to-many relationship with Review
	Reviews []Review `gorm:"foreignKey:RestaurantID" json:"-"`

	// Many-to-many relationship back to User
	Users []User `gorm:"many2many:visits" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"tastebook/config"
	"tastebook/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database configured in AppConfig, runs the migrations and
// returns the handle. The handle is passed explicitly to the repositories;
// there is no package-level connection.
func InitDB() *gorm.DB {
	dsn := config.AppConfig.DatabaseURL

	// GORM logger configuration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	if err := Migrate(db); err != nil {
		panic(fmt.Errorf("failed to migrate database: %w", err))
	}

	fmt.Println("Database connection successful and migrations complete.")
	return db
}

// Migrate creates the user, restaurant and review tables plus the visits
// join table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.Review{})
}

// SeedInitialData populates the store with the demo restaurants, two users
// and their reviews. It is a no-op when restaurants already exist.
func SeedInitialData(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		log.Printf("Failed to check for existing restaurants: %v\n", err)
		return
	}
	if count > 0 {
		return
	}

	hashed1, _ := bcrypt.GenerateFromPassword([]byte("Gichachi@123"), bcrypt.DefaultCost)
	user1 := models.User{Email: "gichachi@gmail.com", Password: string(hashed1)}

	hashed2, _ := bcrypt.GenerateFromPassword([]byte("Kmurll$123"), bcrypt.DefaultCost)
	user2 := models.User{Email: "kmurll@gmail.com", Password: string(hashed2)}

	restaurants := []models.Restaurant{
		{
			Name:        "The Copper Ivy",
			Location:    "Nairobi",
			Description: "All Day Dining, Bar and Restaurant, Coffee Shop, Take Away, Bakery.",
			Image:       "https://kenya.hsmagazine.digital/wp-content/uploads/2019/11/The-Copper-Ivy-A-Plush-Restaurant-In-Nairobi-Opening-Soon.jpg",
		},
		{
			Name:        "Forodhani Sea-Front Restaurant",
			Location:    "Mombasa",
			Description: "Authentic Swahili Cuisine with beautiful sea views, surrounded by the Mombasa culture and history",
			Image:       "https://fastly.4sqi.net/img/general/600x600/27328_it82ZFG6LVU4PaJcAdYBQOIpXgjXx9Cj_FqLXz5-zKE.jpg",
		},
		{
			Name:        "Tribe Hotel",
			Location:    "Nairobi",
			Description: "This luxury boutique hotel in Nairobi offers air-conditioned accommodations with a complimentary mini-bar and free WiFi.",
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSDmItWARppMsm3Fdsd4_jJQ38tsRMvZpyM0xG4hmuRybGNc5xVPTvxtto467Ec1trxmX8&usqp=CAU",
		},
		{
			Name:        "Mahali Mzuri",
			Location:    "Masai Mara",
			Description: "Surrounded by savannah in the Olare Motorogi Conservancy, this polished all-inclusive lodge is 28 km from Mara North Airstrip and 48 km from wildlife at Maasai Mara National Reserve.",
			Image:       "https://www.micato.com/wp-content/uploads/2018/09/mahali-mzuri-2-2.jpg",
		},
		{
			Name:        "Nyama Mama Delta",
			Location:    "Nairobi",
			Description: "It serves up traditional Kenyan dishes with a modern twist. The restaurant is decorated in colorful Kenyan fabrics and hand-painted murals, and has two outlets",
			Image:       "https://itin-dev.sfo2.cdn.digitaloceanspaces.com/freeImage/tPv8lFk3SNmZ23yjsXfk1LrJmFkZGuyr",
		},
		{
			Name:        "Elsa's Kopje Lodge",
			Location:    "Meru",
			Description: "This eco-friendly boutique lodge sits on Mughwango Hill overlooking the Meru plains. The elegant rustic cottages offer spectacular views over Meru National Park, and the restaurant serves excellent international dishes with an Italian influence.",
			Image:       "https://www.theluxurysafaricompany.com/app/uploads/2019/09/els.jpg",
		},
		{
			Name:        "Hemingways Nairobi",
			Location:    "Nairobi",
			Description: "It is a colonial-style boutique hotel harking back to the days when its namesake writer explored east Africa. It's set in the leafy and secluded suburbs of Karen looking out over the Ngong Hills.",
			Image:       "https://www.africanmeccasafaris.com/wp-content/uploads/hemingwaysnairobi1.jpg",
		},
		{
			Name:        "Saruni Samburu Lodge",
			Location:    "Samburu",
			Description: "Offering stunning views over the plains, the lodge is located on the top of a rocky outcrop in the Kalama Conservancy bordering Samburu National Reserve. The cuisine has an Italian influence.",
			Image:       "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/09/80/6c/4b/saruni-samburu.jpg?w=700&h=-1&s=1",
		},
		{
			Name:        "Craving Inn",
			Location:    "Mombasa",
			Description: "A coffee shop based at Citymall Nyali on the 2ND floor. Come enjoy a variety of snacks and meals. From burgers, sandwich, fish, chicken, samosa, kabab, vegetable options, cakes, waffles, coffees, mojitos, freak shakes.",
			Image:       "https://uzamart.com/wp-content/uploads/2022/04/Screenshot_20220416-103715_Instagram.jpg",
		},
		{
			Name:        "Boho Eatery",
			Location:    "Nairobi",
			Description: "Boho Eatery is a vegan restaurant that was built with sustainable living in mind. The menu features dishes made with plant-based proteins and vegetables, making it a great choice for anyone looking for something healthy and delicious.",
			Image:       "https://itin-dev.sfo2.cdn.digitaloceanspaces.com/freeImage/ScvVVtjRdE0gQKVn2hpoftlJhcplsw5B",
		},
	}

	if err := db.Create(&user1).Error; err != nil {
		log.Printf("Failed to seed user %s: %v\n", user1.Email, err)
		return
	}
	if err := db.Create(&user2).Error; err != nil {
		log.Printf("Failed to seed user %s: %v\n", user2.Email, err)
		return
	}
	if err := db.Create(&restaurants).Error; err != nil {
		log.Printf("Failed to seed restaurants: %v\n", err)
		return
	}

	reviews := []models.Review{
		{
			Content:      "This place is great! Both the food and services are top notch",
			Rating:       5,
			Timestamp:    time.Now().UTC(),
			UserID:       user1.ID,
			RestaurantID: restaurants[0].ID,
		},
		{
			Content:      "Not too bad. The view is great and also you get to experience the Swahili culture well but I waited for some time before my food came.",
			Rating:       3,
			Timestamp:    time.Now().UTC(),
			UserID:       user2.ID,
			RestaurantID: restaurants[1].ID,
		},
	}
	if err := db.Create(&reviews).Error; err != nil {
		log.Printf("Failed to seed reviews: %v\n", err)
	}

	// Populate the many-to-many visits relation
	if err := db.Model(&user1).Association("Restaurants").Append(&restaurants[0]); err != nil {
		log.Printf("Failed to seed visit for %s: %v\n", user1.Email, err)
	}
	if err := db.Model(&user2).Association("Restaurants").Append(&restaurants[1]); err != nil {
		log.Printf("Failed to seed visit for %s: %v\n", user2.Email, err)
	}

	log.Println("Seeded initial restaurants, users and reviews.")
}

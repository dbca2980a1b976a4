package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Joeseb100/realprops/models"
	"github.com/Joeseb100/realprops/storage"
)

// Seeds the admin account and a handful of sample listings. Safe to run
// more than once: the admin upserts and properties are only inserted into
// an empty catalog.
func main() {
	db := storage.InitializeDB()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@realproperties.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admins := storage.NewAdminRepository(db)
	if _, err := admins.Seed(email, password); err != nil {
		log.Fatalf("Error seeding admin: %v", err)
	}
	fmt.Printf("Admin user ready: %s\n", email)

	var count int64
	db.Model(&models.Property{}).Count(&count)
	if count > 0 {
		fmt.Printf("Catalog already has %d properties, skipping samples\n", count)
		return
	}

	properties := storage.NewPropertyRepository(db)
	samples := []models.Property{
		{
			Title:       "Spacious 3BHK Villa with Garden",
			Price:       7500000,
			Location:    "Kanjirapally Town",
			Type:        models.PropertyTypeHouse,
			AreaSqft:    1800,
			Bedrooms:    3,
			Bathrooms:   2,
			Description: "Beautiful 3BHK villa in the heart of Kanjirapally Town. Spacious rooms, modern kitchen, private garden, and car parking. Close to schools, hospitals, and market. Ready to move in.",
			PhoneNumber: "+919876543210",
		},
		{
			Title:       "Modern 4BHK House Near Church",
			Price:       9500000,
			Location:    "Kanjirapally Town",
			Type:        models.PropertyTypeHouse,
			AreaSqft:    2200,
			Bedrooms:    4,
			Bathrooms:   3,
			Description: "Premium 4BHK house with contemporary design. Italian marble flooring, modular kitchen, 3 attached bathrooms, sitout, and terrace. Located near the main church. Excellent neighbourhood.",
			PhoneNumber: "+919876543210",
		},
		{
			Title:       "15 Cent Residential Plot",
			Price:       3000000,
			Location:    "Erumely",
			Type:        models.PropertyTypePlot,
			AreaSqft:    6534,
			Description: "15 cent residential plot in Erumely. Well-connected road, electricity and water available. Ideal for building your dream home. Clear title, ready for registration.",
			PhoneNumber: "+919876543210",
		},
		{
			Title:       "2BHK Budget House for Sale",
			Price:       4500000,
			Location:    "Mundakayam",
			Type:        models.PropertyTypeHouse,
			AreaSqft:    1200,
			Bedrooms:    2,
			Bathrooms:   1,
			Description: "Affordable 2BHK house in Mundakayam. Well-maintained, good ventilation, kitchen garden space. 5 minutes from bus stand. Best value in the area.",
			PhoneNumber: "+919876543210",
		},
		{
			Title:       "25 Cent Plot with Rubber Plantation",
			Price:       5000000,
			Location:    "Erumely",
			Type:        models.PropertyTypePlot,
			AreaSqft:    10890,
			Description: "25 cent plot with established rubber plantation in Erumely. Peaceful location, surrounded by greenery. Road access available. Suitable for residential or agricultural purpose.",
			PhoneNumber: "+919876543210",
		},
		{
			Title:       "Luxury 4BHK Duplex Villa",
			Price:       15000000,
			Location:    "Kanjirapally Town",
			Type:        models.PropertyTypeHouse,
			AreaSqft:    3000,
			Bedrooms:    4,
			Bathrooms:   4,
			Description: "Ultra-premium duplex villa with designer interiors. Home theater, gym room, modular kitchen, solar panels, rainwater harvesting. Gated community with 24/7 security. The finest property in Kanjirapally.",
			PhoneNumber: "+919876543210",
		},
	}

	for i := range samples {
		if err := properties.Create(&samples[i], nil); err != nil {
			log.Fatalf("Error creating sample property %q: %v", samples[i].Title, err)
		}
	}
	fmt.Printf("%d sample properties created\n", len(samples))
}

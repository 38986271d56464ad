// Command main runs the database seeder for devbits.
package main

import (
	"flag"
	"log"

	"devbits/internal/config"
	"devbits/internal/database"
	"devbits/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Seeding: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
}

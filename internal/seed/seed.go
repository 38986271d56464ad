// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devbits/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with generated data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll wipes all rows, likes first to respect foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.OAuthAccount{},
		&models.User{},
	}
	for _, t := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(t).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// FakeUser builds a user with a fabricated Google identity.
func FakeUser() (*models.User, *models.OAuthAccount) {
	email := gofakeit.Email()
	username := gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999))
	picture := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID())

	user := &models.User{
		Email:          &email,
		Username:       &username,
		ProfilePicture: &picture,
	}
	account := &models.OAuthAccount{
		Provider:       models.ProviderGoogle,
		ProviderUserID: gofakeit.DigitN(21),
	}
	return user, account
}

// FakePost builds a post authored by the given user.
func FakePost(user *models.User) *models.Post {
	return &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  user.ID,
	}
}

// SeedUsers inserts n users, each with one OAuth account.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, account := FakeUser()
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			account.UserID = user.ID
			return tx.Create(account).Error
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))
	return users, nil
}

// SeedPosts inserts n posts with random authors, then threads comments and
// likes onto them.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author posts")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := FakePost(users[rand.Intn(len(users))])
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("failed to create post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))

	if err := s.seedComments(users, posts); err != nil {
		return nil, err
	}
	if err := s.seedLikes(users, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) error {
	total := 0
	for _, post := range posts {
		var thread []*models.Comment
		for i := 0; i < rand.Intn(6); i++ {
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  users[rand.Intn(len(users))].ID,
				Content: gofakeit.Sentence(12),
			}
			// Roughly a third of comments reply to an earlier one on the same post.
			if len(thread) > 0 && rand.Intn(3) == 0 {
				parent := thread[rand.Intn(len(thread))]
				comment.ParentCommentID = &parent.ID
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			thread = append(thread, comment)
			total++
		}
	}
	log.Printf("Created %d comments", total)
	return nil
}

func (s *Seeder) seedLikes(users []*models.User, posts []*models.Post) error {
	total := 0
	for _, post := range posts {
		for i := 0; i < rand.Intn(len(users)+1); i++ {
			like := models.NewPostLike(users[rand.Intn(len(users))].ID, post.ID)
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			total++
		}
	}

	var comments []*models.Comment
	if err := s.db.Find(&comments).Error; err != nil {
		return fmt.Errorf("failed to load comments for likes: %w", err)
	}
	for _, comment := range comments {
		if rand.Intn(2) == 0 {
			continue
		}
		like := models.NewCommentLike(users[rand.Intn(len(users))].ID, comment.ID)
		if err := s.db.Create(like).Error; err != nil {
			return fmt.Errorf("failed to create like: %w", err)
		}
		total++
	}
	log.Printf("Created %d likes", total)
	return nil
}

// Run executes a full seeding pass.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}
	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return err
	}
	_, err = s.SeedPosts(users, opts.NumPosts)
	return err
}

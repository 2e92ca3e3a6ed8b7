// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FactoryOptions tune how the factory generates and persists entities.
type FactoryOptions struct {
	// DryRun builds entities with synthetic IDs without touching the DB.
	DryRun bool
	// SkipBcrypt stores a plaintext password, for fast local seeding.
	SkipBcrypt bool
	// MaxDays is how far back in time generated timestamps spread.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts FactoryOptions
	rand *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts FactoryOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
	user := &models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(10),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:      models.RoleUser,
		IsActive:  true,
	}

	if f.opts.SkipBcrypt {
		user.Password = "Password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the author without persisting it.
// Roughly 40%% of posts get an image; timestamps spread over MaxDays.
func (f *Factory) BuildPost(author *models.User, overrides ...func(*models.Post)) *models.Post {
	categories := []models.PostCategory{
		models.CategoryGeneral,
		models.CategoryGeneral,
		models.CategoryGeneral,
		models.CategoryQuestion,
		models.CategoryAnnouncement,
	}

	post := &models.Post{
		Content:  gofakeit.Paragraph(1, f.rand.Intn(3)+1, f.rand.Intn(8)+3, " "),
		Category: categories[f.rand.Intn(len(categories))],
		AuthorID: author.ID,
		IsActive: true,
	}
	if len(post.Content) > 500 {
		post.Content = post.Content[:500]
	}

	if f.rand.Float32() < 0.4 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// BuildComment constructs a comment on the post without persisting it.
func (f *Factory) BuildComment(author *models.User, post *models.Post) *models.Comment {
	content := gofakeit.Sentence(f.rand.Intn(12) + 2)
	if len(content) > 280 {
		content = content[:280]
	}
	return &models.Comment{
		Content:   content,
		PostID:    post.ID,
		AuthorID:  author.ID,
		CreatedAt: post.CreatedAt.Add(time.Duration(f.rand.Intn(120)) * time.Minute),
	}
}

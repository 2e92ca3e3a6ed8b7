package seed

import (
	"fmt"
	"log"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo data: users, a follow mesh,
// posts, likes, comments, and the notifications those actions produce.
// Denormalized counters are recomputed from the edge tables at the end.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, FactoryOptions{MaxDays: 90})

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := createPosts(factory, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	follows, err := createFollowMesh(db, factory, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("created %d follow edges", follows)

	likes, comments, err := createEngagement(db, factory, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("created %d likes and %d comments", likes, comments)

	if err := syncCounters(db); err != nil {
		return fmt.Errorf("failed to sync counters: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE notifications, follows, likes, comments, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include fixed accounts so the demo environment has known logins.
	if count >= 2 {
		admin, err := factory.CreateUser(func(u *models.User) {
			u.Username = "admin"
			u.Email = "admin@example.com"
			u.Role = models.RoleAdmin
			u.Bio = "Keeping the lights on."
		})
		if err == nil {
			users = append(users, admin)
		}

		demo, err := factory.CreateUser(func(u *models.User) {
			u.Username = "demo"
			u.Email = "demo@example.com"
			u.Bio = "Just looking around."
		})
		if err == nil {
			users = append(users, demo)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("created %d users...", i)
		}
	}

	return users, nil
}

func createPosts(factory *Factory, users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[factory.rand.Intn(len(users))]
		posts = append(posts, factory.BuildPost(author))
	}

	if err := factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// createFollowMesh makes every user follow a random subset of the others,
// with the corresponding Follow notification.
func createFollowMesh(db *gorm.DB, factory *Factory, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, follower := range users {
		targets := factory.rand.Intn(len(users)/2) + 1
		for i := 0; i < targets; i++ {
			target := users[factory.rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}

			follow := &models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			if err := db.Create(follow).Error; err != nil {
				// unique-pair collisions are expected in a random mesh
				continue
			}
			created++

			notification := &models.Notification{
				Type:        models.NotificationFollow,
				RecipientID: target.ID,
				SenderID:    follower.ID,
			}
			if err := db.Create(notification).Error; err != nil {
				return created, err
			}
		}
	}
	return created, nil
}

// createEngagement sprinkles likes and comments over the posts, emitting
// notifications for actions targeting other users' posts.
func createEngagement(db *gorm.DB, factory *Factory, users []*models.User, posts []*models.Post) (int, int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, 0, nil
	}

	likesCreated := 0
	commentsCreated := 0

	for _, post := range posts {
		likers := factory.rand.Intn(len(users)/2 + 1)
		for i := 0; i < likers; i++ {
			user := users[factory.rand.Intn(len(users))]

			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := db.Create(like).Error; err != nil {
				continue
			}
			likesCreated++

			if user.ID != post.AuthorID {
				postID := post.ID
				notification := &models.Notification{
					Type:        models.NotificationLike,
					RecipientID: post.AuthorID,
					SenderID:    user.ID,
					PostID:      &postID,
				}
				if err := db.Create(notification).Error; err != nil {
					return likesCreated, commentsCreated, err
				}
			}
		}

		commenters := factory.rand.Intn(4)
		for i := 0; i < commenters; i++ {
			user := users[factory.rand.Intn(len(users))]

			comment := factory.BuildComment(user, post)
			if err := db.Create(comment).Error; err != nil {
				return likesCreated, commentsCreated, err
			}
			commentsCreated++

			if user.ID != post.AuthorID {
				postID := post.ID
				notification := &models.Notification{
					Type:        models.NotificationComment,
					RecipientID: post.AuthorID,
					SenderID:    user.ID,
					PostID:      &postID,
				}
				if err := db.Create(notification).Error; err != nil {
					return likesCreated, commentsCreated, err
				}
			}
		}
	}

	return likesCreated, commentsCreated, nil
}

// syncCounters recomputes the denormalized counters from the edge tables.
// The seeder writes edges directly, bypassing the transactional repository
// paths that normally keep the counters in step.
func syncCounters(db *gorm.DB) error {
	statements := []string{
		`UPDATE posts SET like_count = (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)`,
		`UPDATE posts SET comment_count = (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)`,
		`UPDATE users SET followers_count = (SELECT COUNT(*) FROM follows WHERE follows.following_id = users.id)`,
		`UPDATE users SET following_count = (SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id)`,
		`UPDATE users SET posts_count = (SELECT COUNT(*) FROM posts WHERE posts.author_id = users.id AND posts.is_active)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

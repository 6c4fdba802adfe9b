// Command seed fills a development database with fake users, blogs and bookmarks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/viper"

	"github.com/sushihentaime/postly/internal/blogservice"
	"github.com/sushihentaime/postly/internal/common"
	"github.com/sushihentaime/postly/internal/userservice"
)

func main() {
	numUsers := flag.Int("users", 10, "number of users to create")
	numBlogs := flag.Int("blogs", 40, "number of blogs to create")
	numBookmarks := flag.Int("bookmarks", 120, "number of bookmark toggles to run")
	envFile := flag.String("env", ".env", "dotenv file with the POSTGRES_* settings")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger, *envFile, *numUsers, *numBlogs, *numBookmarks); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, envFile string, numUsers, numBlogs, numBookmarks int) error {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "postly")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		logger.Warn("no env file, using environment only", slog.String("file", envFile))
	}

	dsn := common.DSN(v.GetString("POSTGRES_HOST"), v.GetString("POSTGRES_PORT"), v.GetString("POSTGRES_USER"), v.GetString("POSTGRES_PASSWORD"), v.GetString("POSTGRES_DB"))
	db, err := common.NewDB(dsn, 5, 5, time.Minute)
	if err != nil {
		return err
	}
	defer common.CloseDB(db)

	// tokens are thrown away; any secret will do
	tokens, err := userservice.NewTokenMaker(gofakeit.Password(true, true, true, false, false, 32), time.Minute)
	if err != nil {
		return err
	}

	users := userservice.NewUserService(db, nil, tokens, logger)
	blogs := blogservice.NewBlogService(db)
	ctx := context.Background()

	gofakeit.Seed(time.Now().UnixNano())

	var userIDs []int
	for i := 0; i < numUsers; i++ {
		in := userservice.SignupInput{
			Username: gofakeit.Email(),
			Password: "password123",
			Name:     gofakeit.Name(),
		}

		token, err := users.Signup(ctx, in)
		if err != nil {
			return fmt.Errorf("create user %s: %w", in.Username, err)
		}

		id, err := users.Authenticate(token)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	if len(userIDs) == 0 {
		logger.Info("no users requested, nothing else to seed")
		return nil
	}

	var blogIDs []int
	for i := 0; i < numBlogs; i++ {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID())
		published := rand.Intn(5) > 0

		b, err := blogs.CreateBlog(ctx, userIDs[rand.Intn(len(userIDs))], blogservice.CreateBlogInput{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(3, 4, 12, "\n\n"),
			Image:     &image,
			Published: &published,
		})
		if err != nil {
			return fmt.Errorf("create blog: %w", err)
		}
		blogIDs = append(blogIDs, b.ID)
	}

	if len(blogIDs) > 0 {
		for i := 0; i < numBookmarks; i++ {
			_, err := blogs.ToggleBookmark(ctx, userIDs[rand.Intn(len(userIDs))], blogIDs[rand.Intn(len(blogIDs))])
			if err != nil {
				return fmt.Errorf("toggle bookmark: %w", err)
			}
		}
	}

	logger.Info("seeded database",
		slog.Int("users", len(userIDs)),
		slog.Int("blogs", len(blogIDs)),
		slog.Int("bookmark_toggles", numBookmarks),
		slog.String("password", "password123"))

	return nil
}

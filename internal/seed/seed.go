package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/repositories"
)

// UserCreator defines the interface that the user repository must implement.
type UserCreator interface {
	GetOrCreate(ctx context.Context, username string) (*models.UserDB, error)
	SetEmail(ctx context.Context, userID uuid.UUID, email string) error
}

// FeedbackSaver defines the interface that the feedback write repository must implement.
type FeedbackSaver interface {
	Save(ctx context.Context, title, description, category string, authorID uuid.UUID) (*models.FeedbackDB, error)
	AdjustUpvoteCount(ctx context.Context, feedbackID uuid.UUID, delta int) error
}

// FeedbackCounter defines the interface that the feedback read repository must implement.
type FeedbackCounter interface {
	List(ctx context.Context, filter models.ListFilter) ([]repositories.FeedbackRow, int, error)
}

// CommentSaver defines the interface that the comment repository must implement.
type CommentSaver interface {
	Save(ctx context.Context, feedbackID, authorID uuid.UUID, content string) (*models.CommentDB, error)
}

// UpvoteSaver defines the interface that the upvote repository must implement.
type UpvoteSaver interface {
	Insert(ctx context.Context, userID, feedbackID uuid.UUID) (bool, error)
}

type seedUser struct {
	username string
	email    string
}

type seedComment struct {
	author  string
	content string
}

type seedFeedback struct {
	title       string
	description string
	category    string
	author      string
	comments    []seedComment
	upvoters    []string
}

var sampleUsers = []seedUser{
	{username: "GTAFan2024", email: "gtafan@example.com"},
	{username: "ViceCityLover", email: "vicecity@example.com"},
	{username: "RockstarDev", email: "dev@rockstar.com"},
}

var sampleFeedback = []seedFeedback{
	{
		title:       "Improved Vehicle Physics System",
		description: "The driving mechanics should feel more realistic with better weight distribution and handling for different vehicle types. Sports cars should handle differently from trucks.",
		category:    models.CategoryGameplay,
		author:      "GTAFan2024",
		comments: []seedComment{
			{author: "ViceCityLover", content: "Absolutely agree! The vehicle physics in GTA V felt too arcade-like."},
			{author: "RockstarDev", content: "We're definitely looking into more realistic driving mechanics for VI."},
		},
		upvoters: []string{"ViceCityLover"},
	},
	{
		title:       "Enhanced Character Customization",
		description: "More detailed character creation options including facial features, body types, clothing styles, and tattoos. Should rival other open-world games.",
		category:    models.CategoryGraphics,
		author:      "ViceCityLover",
		comments: []seedComment{
			{author: "GTAFan2024", content: "This would make the game so much more immersive!"},
		},
		upvoters: []string{"GTAFan2024"},
	},
	{
		title:       "Dynamic Weather and Day/Night Cycle",
		description: "Weather should affect gameplay - rain makes driving harder, fog reduces visibility. Day/night cycle should impact NPC behavior and mission availability.",
		category:    models.CategoryWorld,
		author:      "GTAFan2024",
		comments: []seedComment{
			{author: "RockstarDev", content: "Weather effects on gameplay would be amazing. Hope they implement this!"},
		},
		upvoters: []string{"ViceCityLover", "RockstarDev"},
	},
	{
		title:       "Branching Storyline Paths",
		description: "Multiple story paths based on player choices. Different endings and character relationships depending on moral decisions throughout the game.",
		category:    models.CategoryStory,
		author:      "ViceCityLover",
		comments: []seedComment{
			{author: "GTAFan2024", content: "Multiple story paths would give the game huge replay value."},
		},
		upvoters: []string{"GTAFan2024", "RockstarDev"},
	},
}

// Run inserts the sample corpus: three users, four feedback items, their
// comments and upvotes. It is a no-op when the feedback table is not empty,
// so restarting with seeding enabled never duplicates data. Upvote counts
// are adjusted per inserted upvote row, keeping them equal to the relation
// cardinality.
func Run(
	ctx context.Context,
	users UserCreator,
	feedbackWriter FeedbackSaver,
	feedbackReader FeedbackCounter,
	comments CommentSaver,
	upvotes UpvoteSaver,
) error {
	_, total, err := feedbackReader.List(ctx, models.ListFilter{Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Log.Infow("seed skipped, feedback already present", "total", total)
		return nil
	}

	userIDs := make(map[string]uuid.UUID, len(sampleUsers))
	for _, su := range sampleUsers {
		user, err := users.GetOrCreate(ctx, su.username)
		if err != nil {
			return err
		}
		if err := users.SetEmail(ctx, user.UserID, su.email); err != nil {
			return err
		}
		userIDs[su.username] = user.UserID
	}

	for _, item := range sampleFeedback {
		feedback, err := feedbackWriter.Save(ctx, item.title, item.description, item.category, userIDs[item.author])
		if err != nil {
			return err
		}

		for _, c := range item.comments {
			if _, err := comments.Save(ctx, feedback.FeedbackID, userIDs[c.author], c.content); err != nil {
				return err
			}
		}

		for _, upvoter := range item.upvoters {
			inserted, err := upvotes.Insert(ctx, userIDs[upvoter], feedback.FeedbackID)
			if err != nil {
				return err
			}
			if inserted {
				if err := feedbackWriter.AdjustUpvoteCount(ctx, feedback.FeedbackID, 1); err != nil {
					return err
				}
			}
		}
	}

	logger.Log.Infow("seed finished",
		"users", len(sampleUsers),
		"feedback", len(sampleFeedback),
	)
	return nil
}

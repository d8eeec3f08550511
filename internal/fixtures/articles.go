// Package fixtures holds the hardcoded sample articles printed by the seed tool.
package fixtures

import "newsseed/internal/models"

var sampleArticles = []models.Article{
	{
		Title:        "Breaking News!",
		Description:  "This is breaking news! Arnold Schwarzenegger has been seen with a 20 year old male human in the park.",
		Content:      "This is breaking news! Arnold Schwarzenegger has been seen with a 20 year old male human in the park. Arnold is 78 years old. will he terminate him?",
		Author:       "John Doe",
		ThumbnailURL: "media/articles/test1/thumbnail.jpg",
		PublishedAt:  models.MustParseTimestamp("2024-03-23T12:00:00Z"),
		CreatedAt:    models.MustParseTimestamp("2024-03-23T11:55:00Z"),
		UpdatedAt:    models.MustParseTimestamp("2024-03-23T12:00:00Z"),
	},
}

// SampleArticles returns a copy of the sample articles in their fixed order.
func SampleArticles() []models.Article {
	out := make([]models.Article, len(sampleArticles))
	copy(out, sampleArticles)

	return out
}

package research

import (
	"context"
	"sort"
	"strings"

	"ideacheck-backend/internal/research/producthunt"
	"ideacheck-backend/internal/shared/telemetry"
)

// SimilarProduct is one launched product relevant to the submitted idea.
type SimilarProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	VotesCount  int      `json:"votesCount"`
	Website     string   `json:"website,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

const (
	maxTopicsToScan    = 2
	postsPerTopic      = 15
	maxSimilarProducts = 5
)

// SimilarProductAdapter resolves a topic on the product-discovery API, pulls
// its top-voted listings and ranks them by keyword overlap and popularity.
// A nil client (credentials not configured) disables the adapter.
type SimilarProductAdapter struct {
	Client *producthunt.Client
}

// NewSimilarProductAdapter returns a disabled adapter when credentials are missing.
func NewSimilarProductAdapter(clientID, clientSecret string) *SimilarProductAdapter {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return &SimilarProductAdapter{}
	}
	return &SimilarProductAdapter{Client: producthunt.NewClient(clientID, clientSecret)}
}

// Search returns up to five relevant products, best first. Failures at any
// step degrade to whatever was collected so far, never an error.
func (a *SimilarProductAdapter) Search(ctx context.Context, topicQuery string, keywords []string) []SimilarProduct {
	if a == nil || a.Client == nil || strings.TrimSpace(topicQuery) == "" {
		return nil
	}

	token, err := a.Client.Token(ctx)
	if err != nil {
		telemetry.Warn("product discovery token exchange failed", map[string]any{"error": err.Error()})
		return nil
	}

	slugs, err := a.Client.SearchTopics(ctx, token, topicQuery)
	if err != nil {
		telemetry.Warn("topic search failed", map[string]any{"error": err.Error()})
	}

	if len(slugs) > maxTopicsToScan {
		slugs = slugs[:maxTopicsToScan]
	}

	var candidates []producthunt.Post
	seen := make(map[string]struct{})
	if len(slugs) > 0 {
		for _, slug := range slugs {
			posts, err := a.Client.TopicPosts(ctx, token, slug, postsPerTopic)
			if err != nil {
				telemetry.Warn("topic posts fetch failed", map[string]any{"slug": slug, "error": err.Error()})
				continue
			}
			for _, post := range posts {
				if _, dup := seen[post.ID]; dup {
					continue
				}
				seen[post.ID] = struct{}{}
				candidates = append(candidates, post)
			}
		}
	} else {
		posts, err := a.Client.TopPosts(ctx, token, postsPerTopic)
		if err != nil {
			telemetry.Warn("top posts fetch failed", map[string]any{"error": err.Error()})
			return nil
		}
		candidates = posts
	}

	return rankProducts(candidates, keywords)
}

// scorePost counts keyword hits across name/tagline/description/topics, plus
// popularity bonuses at 500 and 1000 votes.
func scorePost(post producthunt.Post, keywords []string) int {
	searchable := strings.ToLower(post.Name + " " + post.Tagline + " " + post.Description + " " + strings.Join(post.Topics, " "))
	score := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(searchable, strings.ToLower(kw)) {
			score++
		}
	}
	if post.VotesCount > 500 {
		score++
	}
	if post.VotesCount > 1000 {
		score++
	}
	return score
}

func rankProducts(posts []producthunt.Post, keywords []string) []SimilarProduct {
	type scored struct {
		post  producthunt.Post
		score int
	}
	var relevant []scored
	for _, post := range posts {
		if s := scorePost(post, keywords); s >= 1 {
			relevant = append(relevant, scored{post: post, score: s})
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		if relevant[i].score != relevant[j].score {
			return relevant[i].score > relevant[j].score
		}
		return relevant[i].post.VotesCount > relevant[j].post.VotesCount
	})
	if len(relevant) > maxSimilarProducts {
		relevant = relevant[:maxSimilarProducts]
	}

	products := make([]SimilarProduct, 0, len(relevant))
	for _, item := range relevant {
		products = append(products, SimilarProduct{
			ID:          item.post.ID,
			Name:        item.post.Name,
			Tagline:     item.post.Tagline,
			Description: item.post.Description,
			URL:         item.post.URL,
			VotesCount:  item.post.VotesCount,
			Website:     item.post.Website,
			Topics:      item.post.Topics,
		})
	}
	return products
}

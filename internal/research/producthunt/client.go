package producthunt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultTokenURL   = "https://api.producthunt.com/v2/oauth/token"
	defaultGraphQLURL = "https://api.producthunt.com/v2/api/graphql"
)

// Client talks to the Product Hunt GraphQL API using the OAuth2
// client-credentials grant. Tokens are fetched per call and not cached: request
// volume is low and re-authenticating keeps the client stateless.
type Client struct {
	creds      clientcredentials.Config
	graphqlURL string
	httpClient *http.Client
}

// NewClient builds a client from API key and secret.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		creds: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     defaultTokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		graphqlURL: defaultGraphQLURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Token exchanges client credentials for a bearer token.
func (c *Client) Token(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	return tok.AccessToken, nil
}

// Post is one Product Hunt listing with its topic tags flattened.
type Post struct {
	ID          string
	Name        string
	Tagline     string
	Description string
	URL         string
	VotesCount  int
	Website     string
	Topics      []string
}

const topicsQuery = `
query SearchTopics($query: String!) {
  topics(query: $query, first: 5) {
    edges { node { id name slug } }
  }
}`

const topicPostsQuery = `
query GetTopicPosts($slug: String!, $first: Int!) {
  topic(slug: $slug) {
    posts(first: $first, order: VOTES) {
      edges {
        node {
          id name tagline description url votesCount website
          topics { edges { node { name } } }
        }
      }
    }
  }
}`

const topPostsQuery = `
query GetTopPosts($first: Int!) {
  posts(first: $first, order: VOTES) {
    edges {
      node {
        id name tagline description url votesCount website
        topics { edges { node { name } } }
      }
    }
  }
}`

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type nameNode struct {
	Node struct {
		Name string `json:"name"`
	} `json:"node"`
}

type postNode struct {
	Node struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Tagline     string `json:"tagline"`
		Description string `json:"description"`
		URL         string `json:"url"`
		VotesCount  int    `json:"votesCount"`
		Website     string `json:"website"`
		Topics      struct {
			Edges []nameNode `json:"edges"`
		} `json:"topics"`
	} `json:"node"`
}

type postConnection struct {
	Edges []postNode `json:"edges"`
}

// SearchTopics returns slugs of up to five topics matching the query.
func (c *Client) SearchTopics(ctx context.Context, token, query string) ([]string, error) {
	var out struct {
		Data struct {
			Topics struct {
				Edges []struct {
					Node struct {
						Slug string `json:"slug"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"topics"`
		} `json:"data"`
	}
	if err := c.do(ctx, token, topicsQuery, map[string]any{"query": query}, &out); err != nil {
		return nil, err
	}
	var slugs []string
	for _, edge := range out.Data.Topics.Edges {
		if edge.Node.Slug != "" {
			slugs = append(slugs, edge.Node.Slug)
		}
	}
	return slugs, nil
}

// TopicPosts returns the top-voted posts under one topic.
func (c *Client) TopicPosts(ctx context.Context, token, slug string, first int) ([]Post, error) {
	var out struct {
		Data struct {
			Topic struct {
				Posts postConnection `json:"posts"`
			} `json:"topic"`
		} `json:"data"`
	}
	if err := c.do(ctx, token, topicPostsQuery, map[string]any{"slug": slug, "first": first}, &out); err != nil {
		return nil, err
	}
	return flattenPosts(out.Data.Topic.Posts), nil
}

// TopPosts returns the global top-voted feed, used when no topic matched.
func (c *Client) TopPosts(ctx context.Context, token string, first int) ([]Post, error) {
	var out struct {
		Data struct {
			Posts postConnection `json:"posts"`
		} `json:"data"`
	}
	if err := c.do(ctx, token, topPostsQuery, map[string]any{"first": first}, &out); err != nil {
		return nil, err
	}
	return flattenPosts(out.Data.Posts), nil
}

func (c *Client) do(ctx context.Context, token, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product hunt api error (status %d): %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func flattenPosts(conn postConnection) []Post {
	posts := make([]Post, 0, len(conn.Edges))
	for _, edge := range conn.Edges {
		node := edge.Node
		topics := make([]string, 0, len(node.Topics.Edges))
		for _, t := range node.Topics.Edges {
			if t.Node.Name != "" {
				topics = append(topics, t.Node.Name)
			}
		}
		posts = append(posts, Post{
			ID:          node.ID,
			Name:        node.Name,
			Tagline:     node.Tagline,
			Description: node.Description,
			URL:         node.URL,
			VotesCount:  node.VotesCount,
			Website:     node.Website,
			Topics:      topics,
		})
	}
	return posts
}

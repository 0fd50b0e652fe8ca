package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"todoview/pkg/todo"
)

const (
	// DefaultURL is the public endpoint serving the fixed todo set
	DefaultURL = "https://jsonplaceholder.typicode.com/todos"

	// DefaultLimit caps how many records are requested
	DefaultLimit = 20
)

// Creation dates are synthesized uniformly inside this window, once
// per record at load time.
var (
	creationWindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	creationWindowEnd   = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
)

// RemoteTodo is the wire shape of one record as the endpoint returns
// it, before augmentation.
type RemoteTodo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Client fetches the todo set from the remote REST endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	rng        *rand.Rand
}

// NewClient creates a fetch client for the given endpoint
func NewClient(baseURL string, limit int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		limit:      limit,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch retrieves the todo set and augments each record with its
// description and synthetic creation date. On any failure the caller
// gets an error and no records; there is no retry.
func (c *Client) Fetch(ctx context.Context) ([]todo.Todo, error) {
	url := fmt.Sprintf("%s?_limit=%d", c.baseURL, c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request todos: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("fetch: close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request todos: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read todos body: %w", err)
	}

	var records []RemoteTodo
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	log.Debug().Int("count", len(records)).Str("url", url).Msg("fetch: loaded todos")

	return c.Augment(records), nil
}

// Augment maps raw records onto display records: the description
// defaults to the title and each record gets an independent random
// creation date inside the window.
func (c *Client) Augment(records []RemoteTodo) []todo.Todo {
	todos := make([]todo.Todo, 0, len(records))
	for _, r := range records {
		todos = append(todos, todo.Todo{
			ID:           r.ID,
			Title:        r.Title,
			Completed:    r.Completed,
			Description:  r.Title,
			CreationDate: c.randomCreationDate(),
		})
	}
	return todos
}

func (c *Client) randomCreationDate() time.Time {
	span := creationWindowEnd.Sub(creationWindowStart)
	return creationWindowStart.Add(time.Duration(c.rng.Int63n(int64(span))))
}

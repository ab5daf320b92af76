// Package postgrest implements the catalog storage over a hosted PostgREST database
package postgrest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/courseos/backend/internal/models"
	"github.com/go-resty/resty/v2"
)

const (
	modulesView    = "/modules_with_lesson_count"
	modulesTable   = "/modules"
	lessonsTable   = "/lessons"
	resourcesTable = "/resources"
	orderRPC       = "/rpc/update_order_positions"

	moduleColumns   = "id,title,description,order_position,lesson_count"
	lessonColumns   = "id,module_id,title,description,duration_minutes,order_position,video_url,is_active"
	resourceColumns = "id,lesson_id,title,url,type,order_position"
)

// Client talks to the PostgREST API of the hosted catalog database
type Client struct {
	http *resty.Client
}

// apiError is the error body returned by PostgREST
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// NewClient creates a new PostgREST client.
//
// "apiKey" is sent both as the "apikey" header and as the bearer token, which is what hosted PostgREST gateways expect.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)

	return &Client{http: http}
}

// get decodes the rows of "path" filtered by "params" into "result"
func (c *Client) get(ctx context.Context, path string, params map[string]string, result any) error {
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", path, err)
	}
	if resp.IsError() {
		return responseError(path, resp.StatusCode(), apiErr)
	}
	return nil
}

func responseError(path string, status int, apiErr apiError) error {
	if apiErr.Message == "" {
		return fmt.Errorf("request %s failed with status %d", path, status)
	}
	return fmt.Errorf("request %s failed with status %d: %s (%s)", path, status, apiErr.Message, apiErr.Code)
}

type moduleRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	OrderPosition int    `json:"order_position"`
	LessonCount   int    `json:"lesson_count"`
}

func (r moduleRow) toModel() models.Module {
	return models.Module{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		OrderPosition: r.OrderPosition,
		LessonCount:   r.LessonCount,
	}
}

type lessonRow struct {
	ID              string  `json:"id"`
	ModuleID        string  `json:"module_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DurationMinutes *int    `json:"duration_minutes"`
	OrderPosition   int     `json:"order_position"`
	VideoURL        *string `json:"video_url"`
	IsActive        bool    `json:"is_active"`
}

func (r lessonRow) toModel() models.Lesson {
	lesson := models.Lesson{
		ID:              r.ID,
		ModuleID:        r.ModuleID,
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		OrderPosition:   r.OrderPosition,
		IsActive:        r.IsActive,
	}
	if r.VideoURL != nil {
		lesson.VideoURL = *r.VideoURL
	}
	return lesson
}

type resourceRow struct {
	ID            string `json:"id"`
	LessonID      string `json:"lesson_id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Type          string `json:"type"`
	OrderPosition int    `json:"order_position"`
}

func (r resourceRow) toModel() models.Resource {
	return models.Resource{
		ID:            r.ID,
		LessonID:      r.LessonID,
		Title:         r.Title,
		URL:           r.URL,
		Type:          models.ResourceType(r.Type),
		OrderPosition: r.OrderPosition,
	}
}

func eq(value string) string {
	return "eq." + value
}

// like wildcards are escaped first, then the value is escaped for PostgREST double quotes
var (
	likeEscaper  = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// containsFilter builds an "or" filter matching "search" as a substring of title or description, case-insensitively
func containsFilter(search string) string {
	pattern := quoteEscaper.Replace("*" + likeEscaper.Replace(search) + "*")
	return fmt.Sprintf(`(title.ilike."%s",description.ilike."%s")`, pattern, pattern)
}

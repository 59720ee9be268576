// Package usecase implements the tool operations: each method performs one or
// more Canvas GETs and projects the responses into domain records. The
// service itself is stateless; credentials arrive on every call and the
// client bound to them lives only for that call.
package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/campustools/canvas-mcp/internal/adapter/outbound/canvas"
)

// Defaults for the date-windowed and bucketed tools.
const (
	DefaultUpcomingDays     = 7
	DefaultCalendarDays     = 14
	DefaultAnnouncementDays = 7
	DefaultBucket           = "upcoming"
)

// Fan-out truncation for the no-course-id discussions path.
const (
	discussionCourseLimit = 5
	discussionTopicLimit  = 3
)

// Credentials identify one Canvas instance and one API token. They are passed
// on every call and never retained.
type Credentials struct {
	CanvasURL string
	APIToken  string
}

// Service holds the call-independent collaborators shared by all tool
// operations. It keeps no per-call or cross-call state.
type Service struct {
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a Service. The http.Client carries the per-request
// timeout; pass nil to use the canvas package default.
func NewService(httpClient *http.Client, logger *slog.Logger) *Service {
	return &Service{
		httpClient: httpClient,
		logger:     logger.With("component", "canvas_tools"),
		now:        time.Now,
	}
}

func (s *Service) client(creds Credentials) *canvas.Client {
	return canvas.New(s.httpClient, creds.CanvasURL, creds.APIToken, s.logger)
}

// activeCourses fetches the caller's active courses, the seed list for the
// fan-out operations.
func (s *Service) activeCourses(ctx context.Context, api *canvas.Client) ([]coursePayload, error) {
	params := url.Values{}
	params.Set("enrollment_state", "active")

	var courses []coursePayload
	if err := api.Get(ctx, "courses", params, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

package usecase

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/campustools/canvas-mcp/internal/domain"
)

// Todos returns the caller's todo list.
func (s *Service) Todos(ctx context.Context, creds Credentials) ([]domain.TodoItem, error) {
	api := s.client(creds)

	var todos []todoPayload
	if err := api.Get(ctx, "users/self/todo", nil, &todos); err != nil {
		return nil, err
	}

	items := make([]domain.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, domain.TodoItem{
			AssignmentName:    todo.Assignment.Name,
			DueAt:             todo.Assignment.DueAt,
			CourseID:          todo.Assignment.CourseID,
			AssignmentID:      todo.Assignment.ID,
			Type:              todo.Type,
			NeedsGradingCount: todo.NeedsGradingCount,
			HTMLURL:           todo.Assignment.HTMLURL,
		})
	}
	return items, nil
}

// CalendarEvents returns calendar entries between now and now+daysAhead days.
func (s *Service) CalendarEvents(ctx context.Context, creds Credentials, daysAhead int) ([]domain.CalendarEvent, error) {
	api := s.client(creds)

	start := s.now()
	end := start.AddDate(0, 0, daysAhead)

	params := url.Values{}
	params.Set("start_date", start.Format(time.RFC3339))
	params.Set("end_date", end.Format(time.RFC3339))
	params.Set("per_page", strconv.Itoa(100))

	var payloads []eventPayload
	if err := api.Get(ctx, "calendar_events", params, &payloads); err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(payloads))
	for _, e := range payloads {
		events = append(events, domain.CalendarEvent{
			Title:        e.Title,
			StartAt:      e.StartAt,
			EndAt:        e.EndAt,
			Type:         e.Type,
			Description:  e.Description,
			LocationName: e.LocationName,
			HTMLURL:      e.HTMLURL,
			ContextCode:  e.ContextCode,
		})
	}
	return events, nil
}

// CourseAnnouncements returns announcements posted within the last daysBack
// days across the caller's courses.
func (s *Service) CourseAnnouncements(ctx context.Context, creds Credentials, daysBack int) ([]domain.Announcement, error) {
	api := s.client(creds)

	start := s.now().AddDate(0, 0, -daysBack)

	params := url.Values{}
	params.Set("start_date", start.Format(time.RFC3339))
	params.Set("per_page", strconv.Itoa(50))

	var payloads []announcementPayload
	if err := api.Get(ctx, "announcements", params, &payloads); err != nil {
		return nil, err
	}

	announcements := make([]domain.Announcement, 0, len(payloads))
	for _, a := range payloads {
		var author *string
		if a.Author != nil {
			author = a.Author.DisplayName
		}
		announcements = append(announcements, domain.Announcement{
			Title:       a.Title,
			Message:     a.Message,
			PostedAt:    a.PostedAt,
			Author:      author,
			ContextCode: a.ContextCode,
			HTMLURL:     a.HTMLURL,
		})
	}
	return announcements, nil
}

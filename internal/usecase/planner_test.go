package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodos(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/self/todo", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"type": "submitting", "needs_grading_count": 0,
			 "assignment": {"id": 301, "name": "Essay", "due_at": "2026-03-20T23:59:00Z",
			                "course_id": 42, "html_url": "/a/301"}},
			{"type": "grading", "needs_grading_count": 4, "assignment": {"id": 302, "name": "Peer review"}}
		]`))
	})
	svc, creds := newTestService(t, mux)

	todos, err := svc.Todos(context.Background(), creds)
	require.NoError(err)
	require.Len(todos, 2)

	assert.Equal(ptr("Essay"), todos[0].AssignmentName)
	assert.Equal(ptr(int64(42)), todos[0].CourseID)
	assert.Equal(ptr("submitting"), todos[0].Type)
	assert.Equal(0, todos[0].NeedsGradingCount)

	assert.Equal(4, todos[1].NeedsGradingCount)
	assert.Nil(todos[1].DueAt)
}

func TestCalendarEvents(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/calendar_events", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(testNow.Format(time.RFC3339), q.Get("start_date"))
		assert.Equal(testNow.AddDate(0, 0, 14).Format(time.RFC3339), q.Get("end_date"))
		assert.Equal("100", q.Get("per_page"))

		w.Write([]byte(`[{
			"title": "Midterm", "start_at": "2026-03-23T14:00:00Z", "end_at": "2026-03-23T16:00:00Z",
			"type": "event", "description": "Bring a pencil", "location_name": "Hall B",
			"html_url": "/events/9", "context_code": "course_42"
		}]`))
	})
	svc, creds := newTestService(t, mux)

	events, err := svc.CalendarEvents(context.Background(), creds, 14)
	require.NoError(err)
	require.Len(events, 1)

	assert.Equal(ptr("Midterm"), events[0].Title)
	assert.Equal(ptr("Hall B"), events[0].LocationName)
	assert.Equal(ptr("course_42"), events[0].ContextCode)
}

func TestCourseAnnouncements(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/announcements", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(testNow.AddDate(0, 0, -7).Format(time.RFC3339), q.Get("start_date"))
		assert.Equal("50", q.Get("per_page"))

		w.Write([]byte(`[
			{"title": "Class cancelled", "message": "<p>No class Friday.</p>",
			 "posted_at": "2026-03-12T08:00:00Z", "author": {"display_name": "Dr. Reyes"},
			 "context_code": "course_42", "html_url": "/ann/1"},
			{"title": "System notice", "author": null}
		]`))
	})
	svc, creds := newTestService(t, mux)

	announcements, err := svc.CourseAnnouncements(context.Background(), creds, 7)
	require.NoError(err)
	require.Len(announcements, 2)

	assert.Equal(ptr("Class cancelled"), announcements[0].Title)
	assert.Equal(ptr("Dr. Reyes"), announcements[0].Author)

	// Announcements without an author still project, author null.
	assert.Equal(ptr("System notice"), announcements[1].Title)
	assert.Nil(announcements[1].Author)
}

package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadMessages(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/conversations", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal("unread", q.Get("scope"))
		assert.Equal("50", q.Get("per_page"))

		w.Write([]byte(`[{
			"id": 70, "subject": "Project group", "last_message": "See you at 5",
			"last_message_at": "2026-03-13T17:00:00Z", "message_count": 3,
			"participants": [{"name": "Sam Okafor"}, {"name": "Dana Liu"}],
			"context_name": "Introduction to Computer Science"
		}]`))
	})
	svc, creds := newTestService(t, mux)

	messages, err := svc.UnreadMessages(context.Background(), creds)
	require.NoError(err)
	require.Len(messages, 1)

	assert.Equal(ptr("Project group"), messages[0].Subject)
	assert.Equal(ptr(3), messages[0].MessageCount)
	assert.Equal([]string{"Sam Okafor", "Dana Liu"}, messages[0].Participants)
}

func TestDiscussions_WithCourseID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/courses/42/discussion_topics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 80, "title": "Week 3 reflections", "message": "<p>Discuss.</p>",
			"posted_at": "2026-03-10T09:00:00Z", "discussion_type": "threaded",
			"unread_count": 2, "html_url": "/d/80"
		}]`))
	})
	svc, creds := newTestService(t, mux)

	discussions, err := svc.Discussions(context.Background(), creds, ptr(int64(42)))
	require.NoError(t, err)
	require.Len(t, discussions, 1)

	assert.Equal(t, ptr("Week 3 reflections"), discussions[0].Title)
	assert.Equal(t, ptr(2), discussions[0].UnreadCount)
	assert.Nil(t, discussions[0].CourseName)
}

func TestDiscussions_FanOut(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var mu sync.Mutex
	queried := make(map[int64]bool)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "Course One"}, {"id": 2, "name": "Course Two"},
			{"id": 3, "name": "Course Three"}, {"id": 4, "name": "Course Four"},
			{"id": 5, "name": "Course Five"}, {"id": 6, "name": "Course Six"}
		]`))
	})
	for i := int64(1); i <= 6; i++ {
		id := i
		mux.HandleFunc(fmt.Sprintf("/api/v1/courses/%d/discussion_topics", id), func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			queried[id] = true
			mu.Unlock()
			switch id {
			case 1:
				// Four topics; only the first three survive the truncation.
				w.Write([]byte(`[{"id": 11, "title": "T1"}, {"id": 12, "title": "T2"},
					{"id": 13, "title": "T3"}, {"id": 14, "title": "T4"}]`))
			case 3:
				http.Error(w, "locked", http.StatusForbidden)
			default:
				w.Write([]byte(fmt.Sprintf(`[{"id": %d, "title": "Only topic"}]`, 100+id)))
			}
		})
	}
	svc, creds := newTestService(t, mux)

	discussions, err := svc.Discussions(context.Background(), creds, nil)
	require.NoError(err)

	// Only the first five courses are queried at all.
	assert.False(queried[6])
	for i := int64(1); i <= 5; i++ {
		assert.True(queried[i], "course %d should have been queried", i)
	}

	// 3 from course one, none from failing course three, 1 each from the rest.
	require.Len(discussions, 6)
	assert.Equal(ptr("T1"), discussions[0].Title)
	assert.Equal(ptr("Course One"), discussions[0].CourseName)
	assert.Equal(ptr("T3"), discussions[2].Title)
	for _, d := range discussions {
		assert.NotEqual(ptr("T4"), d.Title)
		assert.NotEqual(ptr("Course Three"), d.CourseName)
	}
}

func TestQuizzes_WithCourseID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/courses/42/quizzes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 90, "title": "Midterm practice", "due_at": "2026-03-22T23:59:00Z",
			"points_possible": 30, "question_count": 15, "time_limit": 45, "html_url": "/q/90"
		}]`))
	})
	svc, creds := newTestService(t, mux)

	quizzes, err := svc.Quizzes(context.Background(), creds, ptr(int64(42)))
	require.NoError(t, err)
	require.Len(t, quizzes, 1)

	assert.Equal(t, ptr("Midterm practice"), quizzes[0].Title)
	assert.Equal(t, ptr(15), quizzes[0].QuestionCount)
	assert.Nil(t, quizzes[0].CourseName)
	assert.Nil(t, quizzes[0].CourseID)
}

func TestQuizzes_FanOutTagsAndSkips(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "name": "Biology"}, {"id": 2, "name": "Chemistry"}]`))
	})
	mux.HandleFunc("/api/v1/courses/1/quizzes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 91, "title": "Cells quiz"}]`))
	})
	mux.HandleFunc("/api/v1/courses/2/quizzes", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	svc, creds := newTestService(t, mux)

	quizzes, err := svc.Quizzes(context.Background(), creds, nil)
	require.NoError(err)
	require.Len(quizzes, 1)

	assert.Equal(ptr("Cells quiz"), quizzes[0].Title)
	assert.Equal(ptr("Biology"), quizzes[0].CourseName)
	assert.Equal(ptr(int64(1)), quizzes[0].CourseID)
}

func TestNotifications(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/self/activity_stream", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("50", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[{
			"id": 500, "title": "New grade posted", "message": "Essay graded",
			"type": "Submission", "created_at": "2026-03-13T12:00:00Z",
			"html_url": "/n/500", "context_type": "Course"
		}]`))
	})
	svc, creds := newTestService(t, mux)

	notifications, err := svc.Notifications(context.Background(), creds)
	require.NoError(err)
	require.Len(notifications, 1)

	assert.Equal(ptr("New grade posted"), notifications[0].Title)
	assert.Equal(ptr("Submission"), notifications[0].Type)
	assert.Equal(ptr("Course"), notifications[0].ContextType)
}

func TestNotifications_FailureYieldsEmptyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/self/activity_stream", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stream offline", http.StatusServiceUnavailable)
	})
	svc, creds := newTestService(t, mux)

	notifications, err := svc.Notifications(context.Background(), creds)
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

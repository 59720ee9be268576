package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/campustools/canvas-mcp/internal/domain"
)

// UnreadMessages returns the caller's unread inbox conversations with the
// participant list flattened to display names.
func (s *Service) UnreadMessages(ctx context.Context, creds Credentials) ([]domain.Message, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Set("scope", "unread")
	params.Set("per_page", strconv.Itoa(50))

	var conversations []conversationPayload
	if err := api.Get(ctx, "conversations", params, &conversations); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(conversations))
	for _, conv := range conversations {
		participants := make([]string, 0, len(conv.Participants))
		for _, p := range conv.Participants {
			if p.Name != nil {
				participants = append(participants, *p.Name)
			}
		}
		messages = append(messages, domain.Message{
			ID:            conv.ID,
			Subject:       conv.Subject,
			LastMessage:   conv.LastMessage,
			LastMessageAt: conv.LastMessageAt,
			MessageCount:  conv.MessageCount,
			Participants:  participants,
			ContextName:   conv.ContextName,
		})
	}
	return messages, nil
}

// Discussions returns discussion topics. With a course id it reads that
// course directly; without one it fans out over the first 5 active courses,
// keeps the first 3 topics of each, and tags every topic with its course
// name. A course whose sub-fetch fails is logged and skipped.
func (s *Service) Discussions(ctx context.Context, creds Credentials, courseID *int64) ([]domain.Discussion, error) {
	api := s.client(creds)

	if courseID != nil {
		var payloads []discussionPayload
		endpoint := fmt.Sprintf("courses/%d/discussion_topics", *courseID)
		if err := api.Get(ctx, endpoint, nil, &payloads); err != nil {
			return nil, err
		}
		discussions := make([]domain.Discussion, 0, len(payloads))
		for _, d := range payloads {
			discussions = append(discussions, projectDiscussion(d, nil))
		}
		return discussions, nil
	}

	courses, err := s.activeCourses(ctx, api)
	if err != nil {
		return nil, err
	}
	if len(courses) > discussionCourseLimit {
		courses = courses[:discussionCourseLimit]
	}

	discussions := make([]domain.Discussion, 0)
	for _, course := range courses {
		var payloads []discussionPayload
		endpoint := fmt.Sprintf("courses/%d/discussion_topics", course.ID)
		if err := api.Get(ctx, endpoint, nil, &payloads); err != nil {
			s.logger.Warn("Skipping course in discussions fan-out.",
				slog.Int64("course_id", course.ID), slog.Any("error", err))
			continue
		}
		if len(payloads) > discussionTopicLimit {
			payloads = payloads[:discussionTopicLimit]
		}
		for _, d := range payloads {
			discussions = append(discussions, projectDiscussion(d, course.Name))
		}
	}
	return discussions, nil
}

func projectDiscussion(d discussionPayload, courseName *string) domain.Discussion {
	return domain.Discussion{
		ID:             d.ID,
		Title:          d.Title,
		Message:        d.Message,
		PostedAt:       d.PostedAt,
		DiscussionType: d.DiscussionType,
		UnreadCount:    d.UnreadCount,
		HTMLURL:        d.HTMLURL,
		CourseName:     courseName,
	}
}

// Quizzes returns quizzes for one course, or fans out over every active
// course tagging each quiz with its course name and id. As in the other
// fan-outs, a failing course is logged and skipped.
func (s *Service) Quizzes(ctx context.Context, creds Credentials, courseID *int64) ([]domain.Quiz, error) {
	api := s.client(creds)

	if courseID != nil {
		var payloads []quizPayload
		endpoint := fmt.Sprintf("courses/%d/quizzes", *courseID)
		if err := api.Get(ctx, endpoint, nil, &payloads); err != nil {
			return nil, err
		}
		quizzes := make([]domain.Quiz, 0, len(payloads))
		for _, q := range payloads {
			quizzes = append(quizzes, projectQuiz(q, nil, nil))
		}
		return quizzes, nil
	}

	courses, err := s.activeCourses(ctx, api)
	if err != nil {
		return nil, err
	}

	quizzes := make([]domain.Quiz, 0)
	for _, course := range courses {
		var payloads []quizPayload
		endpoint := fmt.Sprintf("courses/%d/quizzes", course.ID)
		if err := api.Get(ctx, endpoint, nil, &payloads); err != nil {
			s.logger.Warn("Skipping course in quizzes fan-out.",
				slog.Int64("course_id", course.ID), slog.Any("error", err))
			continue
		}
		id := course.ID
		for _, q := range payloads {
			quizzes = append(quizzes, projectQuiz(q, course.Name, &id))
		}
	}
	return quizzes, nil
}

func projectQuiz(q quizPayload, courseName *string, courseID *int64) domain.Quiz {
	return domain.Quiz{
		ID:             q.ID,
		Title:          q.Title,
		Description:    q.Description,
		DueAt:          q.DueAt,
		LockAt:         q.LockAt,
		UnlockAt:       q.UnlockAt,
		PointsPossible: q.PointsPossible,
		QuestionCount:  q.QuestionCount,
		TimeLimit:      q.TimeLimit,
		HTMLURL:        q.HTMLURL,
		CourseName:     courseName,
		CourseID:       courseID,
	}
}

// Notifications returns the caller's activity stream. This tool degrades to
// an empty list when the fetch fails for any reason; the error is logged but
// never propagated.
func (s *Service) Notifications(ctx context.Context, creds Credentials) ([]domain.Notification, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(50))

	var items []activityItem
	if err := api.Get(ctx, "users/self/activity_stream", params, &items); err != nil {
		s.logger.Warn("Activity stream fetch failed, returning no notifications.", slog.Any("error", err))
		return []domain.Notification{}, nil
	}

	notifications := make([]domain.Notification, 0, len(items))
	for _, item := range items {
		notifications = append(notifications, domain.Notification{
			ID:          item.ID,
			Title:       item.Title,
			Message:     item.Message,
			Type:        item.Type,
			CreatedAt:   item.CreatedAt,
			HTMLURL:     item.HTMLURL,
			ContextType: item.ContextType,
		})
	}
	return notifications, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/campustools/canvas-mcp/internal/domain"
)

// UpcomingAssignments returns planner items of type "assignment" due within
// daysAhead days from now.
func (s *Service) UpcomingAssignments(ctx context.Context, creds Credentials, daysAhead int) ([]domain.PlannerAssignment, error) {
	api := s.client(creds)

	start := s.now()
	end := start.AddDate(0, 0, daysAhead)

	params := url.Values{}
	params.Set("start_date", start.Format(time.RFC3339))
	params.Set("end_date", end.Format(time.RFC3339))
	params.Set("filter", "")

	var items []plannerItem
	if err := api.Get(ctx, "planner/items", params, &items); err != nil {
		return nil, err
	}

	assignments := make([]domain.PlannerAssignment, 0, len(items))
	for _, item := range items {
		if item.PlannableType != "assignment" {
			continue
		}
		assignments = append(assignments, domain.PlannerAssignment{
			Title:          item.Plannable.Title,
			DueAt:          item.Plannable.DueAt,
			PointsPossible: item.Plannable.PointsPossible,
			CourseID:       item.CourseID,
			AssignmentID:   item.Plannable.ID,
			HTMLURL:        item.HTMLURL,
		})
	}
	return assignments, nil
}

// CourseAssignments returns the assignments of one course for the given
// bucket (e.g. "upcoming", "past", "missing"), ordered by due date.
func (s *Service) CourseAssignments(ctx context.Context, creds Credentials, courseID int64, bucket string) ([]domain.Assignment, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Set("bucket", bucket)
	params.Set("order_by", "due_at")

	var payloads []assignmentPayload
	endpoint := fmt.Sprintf("courses/%d/assignments", courseID)
	if err := api.Get(ctx, endpoint, params, &payloads); err != nil {
		return nil, err
	}

	assignments := make([]domain.Assignment, 0, len(payloads))
	for _, a := range payloads {
		assignments = append(assignments, domain.Assignment{
			ID:                      a.ID,
			Name:                    a.Name,
			Description:             a.Description,
			DueAt:                   a.DueAt,
			PointsPossible:          a.PointsPossible,
			SubmissionTypes:         nonNilStrings(a.SubmissionTypes),
			HTMLURL:                 a.HTMLURL,
			HasSubmittedSubmissions: a.HasSubmittedSubmissions,
		})
	}
	return assignments, nil
}

// MissingAssignments walks the caller's active courses and collects the
// "missing" bucket of each one. A course whose sub-fetch fails contributes
// nothing: the failure is logged and the walk continues, so the call as a
// whole still succeeds with partial data.
func (s *Service) MissingAssignments(ctx context.Context, creds Credentials) ([]domain.MissingAssignment, error) {
	api := s.client(creds)

	courses, err := s.activeCourses(ctx, api)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("bucket", "missing")
	params.Set("per_page", strconv.Itoa(100))

	allMissing := make([]domain.MissingAssignment, 0)
	for _, course := range courses {
		var payloads []assignmentPayload
		endpoint := fmt.Sprintf("courses/%d/assignments", course.ID)
		if err := api.Get(ctx, endpoint, params, &payloads); err != nil {
			s.logger.Warn("Skipping course in missing-assignments scan.",
				slog.Int64("course_id", course.ID), slog.Any("error", err))
			continue
		}
		for _, a := range payloads {
			allMissing = append(allMissing, domain.MissingAssignment{
				CourseName:     course.Name,
				CourseID:       course.ID,
				AssignmentID:   a.ID,
				Name:           a.Name,
				DueAt:          a.DueAt,
				PointsPossible: a.PointsPossible,
				HTMLURL:        a.HTMLURL,
			})
		}
	}
	return allMissing, nil
}

// AssignmentDetails returns one assignment with its rubric included.
func (s *Service) AssignmentDetails(ctx context.Context, creds Credentials, courseID, assignmentID int64) (*domain.AssignmentDetails, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Add("include[]", "rubric")
	params.Add("include[]", "rubric_assessment")

	var a assignmentPayload
	endpoint := fmt.Sprintf("courses/%d/assignments/%d", courseID, assignmentID)
	if err := api.Get(ctx, endpoint, params, &a); err != nil {
		return nil, err
	}

	details := &domain.AssignmentDetails{
		ID:                      a.ID,
		Name:                    a.Name,
		Description:             a.Description,
		DueAt:                   a.DueAt,
		PointsPossible:          a.PointsPossible,
		SubmissionTypes:         nonNilStrings(a.SubmissionTypes),
		AllowedAttempts:         a.AllowedAttempts,
		GradingType:             a.GradingType,
		HTMLURL:                 a.HTMLURL,
		Rubric:                  a.Rubric,
		HasSubmittedSubmissions: a.HasSubmittedSubmissions,
	}
	if details.Rubric == nil {
		details.Rubric = []json.RawMessage{}
	}
	return details, nil
}

// SubmissionStatus returns the caller's own submission for one assignment.
func (s *Service) SubmissionStatus(ctx context.Context, creds Credentials, courseID, assignmentID int64) (*domain.Submission, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Add("include[]", "submission_history")
	params.Add("include[]", "rubric_assessment")

	var sub submissionPayload
	endpoint := fmt.Sprintf("courses/%d/assignments/%d/submissions/self", courseID, assignmentID)
	if err := api.Get(ctx, endpoint, params, &sub); err != nil {
		return nil, err
	}

	return &domain.Submission{
		ID:            sub.ID,
		AssignmentID:  sub.AssignmentID,
		SubmittedAt:   sub.SubmittedAt,
		WorkflowState: sub.WorkflowState,
		Grade:         sub.Grade,
		Score:         sub.Score,
		Attempt:       sub.Attempt,
		Late:          sub.Late,
		Missing:       sub.Missing,
		Excused:       sub.Excused,
		PreviewURL:    sub.PreviewURL,
	}, nil
}

// nonNilStrings normalizes an absent upstream list to an empty one.
func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/campustools/canvas-mcp/internal/domain"
)

// DashboardCourses returns the caller's dashboard cards with the upstream
// mixed-case field names (shortName, originalName) mapped to snake_case.
func (s *Service) DashboardCourses(ctx context.Context, creds Credentials) ([]domain.DashboardCourse, error) {
	api := s.client(creds)

	var cards []dashboardCard
	if err := api.Get(ctx, "dashboard/dashboard_cards", nil, &cards); err != nil {
		return nil, err
	}

	courses := make([]domain.DashboardCourse, 0, len(cards))
	for _, card := range cards {
		courses = append(courses, domain.DashboardCourse{
			ID:         card.ID,
			CourseCode: card.CourseCode,
			ShortName:  card.ShortName,
			Name:       card.OriginalName,
			Href:       card.Href,
		})
	}
	return courses, nil
}

// Grades returns the grade snapshots of the caller's active student
// enrollments, either for one course or across all of them. Enrollments of
// any other type (teacher, TA, observer) are dropped.
func (s *Service) Grades(ctx context.Context, creds Credentials, courseID *int64) ([]domain.Grade, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Set("enrollment_state", "active")
	params.Add("include[]", "total_scores")
	params.Add("include[]", "current_grading_period_scores")

	endpoint := "users/self/enrollments"
	if courseID != nil {
		endpoint = fmt.Sprintf("courses/%d/enrollments", *courseID)
	}

	var enrollments []enrollmentPayload
	if err := api.Get(ctx, endpoint, params, &enrollments); err != nil {
		return nil, err
	}

	grades := make([]domain.Grade, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Type != "StudentEnrollment" {
			continue
		}
		grades = append(grades, domain.Grade{
			CourseID:             e.CourseID,
			CurrentScore:         e.Grades.CurrentScore,
			FinalScore:           e.Grades.FinalScore,
			CurrentGrade:         e.Grades.CurrentGrade,
			FinalGrade:           e.Grades.FinalGrade,
			UnpostedCurrentScore: e.Grades.UnpostedCurrentScore,
			UnpostedCurrentGrade: e.Grades.UnpostedCurrentGrade,
		})
	}
	return grades, nil
}

// CourseModules returns one course's modules with their item lists
// re-projected.
func (s *Service) CourseModules(ctx context.Context, creds Credentials, courseID int64) ([]domain.Module, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Add("include[]", "items")

	var payloads []modulePayload
	endpoint := fmt.Sprintf("courses/%d/modules", courseID)
	if err := api.Get(ctx, endpoint, params, &payloads); err != nil {
		return nil, err
	}

	modules := make([]domain.Module, 0, len(payloads))
	for _, m := range payloads {
		items := make([]domain.ModuleItem, 0, len(m.Items))
		for _, item := range m.Items {
			items = append(items, domain.ModuleItem{
				ID:       item.ID,
				Title:    item.Title,
				Type:     item.Type,
				HTMLURL:  item.HTMLURL,
				Position: item.Position,
			})
		}
		modules = append(modules, domain.Module{
			ID:       m.ID,
			Name:     m.Name,
			Position: m.Position,
			UnlockAt: m.UnlockAt,
			State:    m.State,
			Items:    items,
		})
	}
	return modules, nil
}

// CourseSyllabus returns one course with its syllabus body included.
func (s *Service) CourseSyllabus(ctx context.Context, creds Credentials, courseID int64) (*domain.Syllabus, error) {
	api := s.client(creds)

	params := url.Values{}
	params.Add("include[]", "syllabus_body")

	var course courseDetailPayload
	endpoint := fmt.Sprintf("courses/%d", courseID)
	if err := api.Get(ctx, endpoint, params, &course); err != nil {
		return nil, err
	}

	return &domain.Syllabus{
		CourseID:     course.ID,
		CourseName:   course.Name,
		CourseCode:   course.CourseCode,
		SyllabusBody: course.SyllabusBody,
		StartAt:      course.StartAt,
		EndAt:        course.EndAt,
		TimeZone:     course.TimeZone,
	}, nil
}

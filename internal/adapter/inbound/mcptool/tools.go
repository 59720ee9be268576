package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/campustools/canvas-mcp/internal/usecase"
)

// Registrations builds the full tool table for the given service. The table
// is assembled once at startup and handed to the MCP server; nothing is
// registered as a side effect of package loading.
func Registrations(svc *usecase.Service) []Registration {
	h := &handlers{svc: svc}

	return []Registration{
		{
			Tool: mcp.NewTool("get_upcoming_assignments",
				mcp.WithDescription("Get upcoming assignments from Canvas. Returns assignments due within the specified number of days ahead."),
				withCredentials(),
				mcp.WithNumber("days_ahead",
					mcp.DefaultNumber(usecase.DefaultUpcomingDays),
					mcp.Description("Number of days ahead to look for due assignments"),
				),
			),
			Handler: h.upcomingAssignments,
		},
		{
			Tool: mcp.NewTool("get_todos",
				mcp.WithDescription("Get your Canvas todo list. Returns assignments and tasks that need attention."),
				withCredentials(),
			),
			Handler: h.todos,
		},
		{
			Tool: mcp.NewTool("get_dashboard_courses",
				mcp.WithDescription("Get your active Canvas courses from the dashboard."),
				withCredentials(),
			),
			Handler: h.dashboardCourses,
		},
		{
			Tool: mcp.NewTool("get_course_assignments",
				mcp.WithDescription("Get assignments for a specific Canvas course."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Required(),
					mcp.Description("Canvas course ID"),
				),
				mcp.WithString("bucket",
					mcp.DefaultString(usecase.DefaultBucket),
					mcp.Description("Assignment bucket: upcoming, past, overdue, undated, ungraded, unsubmitted, or future"),
				),
			),
			Handler: h.courseAssignments,
		},
		{
			Tool: mcp.NewTool("get_calendar_events",
				mcp.WithDescription("Get upcoming calendar events including assignments, exams, and other events."),
				withCredentials(),
				mcp.WithNumber("days_ahead",
					mcp.DefaultNumber(usecase.DefaultCalendarDays),
					mcp.Description("Number of days ahead to include"),
				),
			),
			Handler: h.calendarEvents,
		},
		{
			Tool: mcp.NewTool("get_course_announcements",
				mcp.WithDescription("Get recent announcements from your Canvas courses."),
				withCredentials(),
				mcp.WithNumber("days_back",
					mcp.DefaultNumber(usecase.DefaultAnnouncementDays),
					mcp.Description("Number of days back to include"),
				),
			),
			Handler: h.courseAnnouncements,
		},
		{
			Tool: mcp.NewTool("get_grades",
				mcp.WithDescription("Get your current grades for all courses or a specific course."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Description("Optional Canvas course ID; omit for all courses"),
				),
			),
			Handler: h.grades,
		},
		{
			Tool: mcp.NewTool("get_missing_assignments",
				mcp.WithDescription("Get assignments you haven't submitted yet (missing assignments)."),
				withCredentials(),
			),
			Handler: h.missingAssignments,
		},
		{
			Tool: mcp.NewTool("get_unread_messages",
				mcp.WithDescription("Get unread messages from your Canvas inbox."),
				withCredentials(),
			),
			Handler: h.unreadMessages,
		},
		{
			Tool: mcp.NewTool("get_assignment_details",
				mcp.WithDescription("Get detailed information about a specific assignment including description and rubric."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Required(),
					mcp.Description("Canvas course ID"),
				),
				mcp.WithNumber("assignment_id",
					mcp.Required(),
					mcp.Description("Canvas assignment ID"),
				),
			),
			Handler: h.assignmentDetails,
		},
		{
			Tool: mcp.NewTool("get_submission_status",
				mcp.WithDescription("Check submission status for a specific assignment."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Required(),
					mcp.Description("Canvas course ID"),
				),
				mcp.WithNumber("assignment_id",
					mcp.Required(),
					mcp.Description("Canvas assignment ID"),
				),
			),
			Handler: h.submissionStatus,
		},
		{
			Tool: mcp.NewTool("get_course_modules",
				mcp.WithDescription("Get course modules and their content structure."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Required(),
					mcp.Description("Canvas course ID"),
				),
			),
			Handler: h.courseModules,
		},
		{
			Tool: mcp.NewTool("get_discussions",
				mcp.WithDescription("Get active discussion topics from your courses."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Description("Optional Canvas course ID; omit to sample recent courses"),
				),
			),
			Handler: h.discussions,
		},
		{
			Tool: mcp.NewTool("get_quizzes",
				mcp.WithDescription("Get upcoming quizzes from your courses."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Description("Optional Canvas course ID; omit for all active courses"),
				),
			),
			Handler: h.quizzes,
		},
		{
			Tool: mcp.NewTool("get_notifications",
				mcp.WithDescription("Get your Canvas notifications."),
				withCredentials(),
			),
			Handler: h.notifications,
		},
		{
			Tool: mcp.NewTool("get_course_syllabus",
				mcp.WithDescription("Get the syllabus for a specific course."),
				withCredentials(),
				mcp.WithNumber("course_id",
					mcp.Required(),
					mcp.Description("Canvas course ID"),
				),
			),
			Handler: h.courseSyllabus,
		},
	}
}

type handlers struct {
	svc *usecase.Service
}

// withCredentials declares the two arguments every tool takes: the Canvas
// base URL and the caller's API token.
func withCredentials() mcp.ToolOption {
	return func(t *mcp.Tool) {
		mcp.WithString("canvas_url",
			mcp.Required(),
			mcp.Description("Base URL of the Canvas instance, e.g. https://school.instructure.com"),
		)(t)
		mcp.WithString("api_token",
			mcp.Required(),
			mcp.Description("Canvas API bearer token"),
		)(t)
	}
}

func credentials(req mcp.CallToolRequest) (usecase.Credentials, error) {
	canvasURL, err := req.RequireString("canvas_url")
	if err != nil {
		return usecase.Credentials{}, err
	}
	apiToken, err := req.RequireString("api_token")
	if err != nil {
		return usecase.Credentials{}, err
	}
	return usecase.Credentials{CanvasURL: canvasURL, APIToken: apiToken}, nil
}

// optionalCourseID distinguishes an omitted course_id from a present one.
func optionalCourseID(req mcp.CallToolRequest) (*int64, error) {
	if _, ok := req.GetArguments()["course_id"]; !ok {
		return nil, nil
	}
	v, err := req.RequireInt("course_id")
	if err != nil {
		return nil, err
	}
	id := int64(v)
	return &id, nil
}

// jsonResult marshals a tool result into a single JSON text content block.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) upcomingAssignments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	daysAhead := req.GetInt("days_ahead", usecase.DefaultUpcomingDays)
	assignments, err := h.svc.UpcomingAssignments(ctx, creds, daysAhead)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(assignments)
}

func (h *handlers) todos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	todos, err := h.svc.Todos(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(todos)
}

func (h *handlers) dashboardCourses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courses, err := h.svc.DashboardCourses(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(courses)
}

func (h *handlers) courseAssignments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := req.RequireInt("course_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bucket := req.GetString("bucket", usecase.DefaultBucket)
	assignments, err := h.svc.CourseAssignments(ctx, creds, int64(courseID), bucket)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(assignments)
}

func (h *handlers) calendarEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	daysAhead := req.GetInt("days_ahead", usecase.DefaultCalendarDays)
	events, err := h.svc.CalendarEvents(ctx, creds, daysAhead)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(events)
}

func (h *handlers) courseAnnouncements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	daysBack := req.GetInt("days_back", usecase.DefaultAnnouncementDays)
	announcements, err := h.svc.CourseAnnouncements(ctx, creds, daysBack)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(announcements)
}

func (h *handlers) grades(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := optionalCourseID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	grades, err := h.svc.Grades(ctx, creds, courseID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(grades)
}

func (h *handlers) missingAssignments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	missing, err := h.svc.MissingAssignments(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(missing)
}

func (h *handlers) unreadMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	messages, err := h.svc.UnreadMessages(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(messages)
}

func (h *handlers) assignmentDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := req.RequireInt("course_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	assignmentID, err := req.RequireInt("assignment_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	details, err := h.svc.AssignmentDetails(ctx, creds, int64(courseID), int64(assignmentID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(details)
}

func (h *handlers) submissionStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := req.RequireInt("course_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	assignmentID, err := req.RequireInt("assignment_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	submission, err := h.svc.SubmissionStatus(ctx, creds, int64(courseID), int64(assignmentID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(submission)
}

func (h *handlers) courseModules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := req.RequireInt("course_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	modules, err := h.svc.CourseModules(ctx, creds, int64(courseID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(modules)
}

func (h *handlers) discussions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := optionalCourseID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	discussions, err := h.svc.Discussions(ctx, creds, courseID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(discussions)
}

func (h *handlers) quizzes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := optionalCourseID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	quizzes, err := h.svc.Quizzes(ctx, creds, courseID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(quizzes)
}

func (h *handlers) notifications(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notifications, err := h.svc.Notifications(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(notifications)
}

func (h *handlers) courseSyllabus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creds, err := credentials(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	courseID, err := req.RequireInt("course_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	syllabus, err := h.svc.CourseSyllabus(ctx, creds, int64(courseID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(syllabus)
}

// Package domain defines the flat output records the tools return. Each type
// is a projection of one Canvas resource: pointer fields serialize as null
// when Canvas omits or nulls the value, value fields carry an explicit
// default.
package domain

import "encoding/json"

// PlannerAssignment is one upcoming assignment taken from the planner feed.
type PlannerAssignment struct {
	Title          *string  `json:"title"`
	DueAt          *string  `json:"due_at"`
	PointsPossible *float64 `json:"points_possible"`
	CourseID       *int64   `json:"course_id"`
	AssignmentID   *int64   `json:"assignment_id"`
	HTMLURL        *string  `json:"html_url"`
}

// TodoItem is one entry from the user's todo list.
type TodoItem struct {
	AssignmentName    *string `json:"assignment_name"`
	DueAt             *string `json:"due_at"`
	CourseID          *int64  `json:"course_id"`
	AssignmentID      *int64  `json:"assignment_id"`
	Type              *string `json:"type"`
	NeedsGradingCount int     `json:"needs_grading_count"`
	HTMLURL           *string `json:"html_url"`
}

// DashboardCourse is one dashboard card. Canvas uses mixed casing upstream
// (shortName, originalName); output is uniformly snake_case.
type DashboardCourse struct {
	ID         *int64  `json:"id"`
	CourseCode *string `json:"course_code"`
	ShortName  *string `json:"short_name"`
	Name       *string `json:"name"`
	Href       *string `json:"href"`
}

// Assignment is one assignment within a course.
type Assignment struct {
	ID                      *int64   `json:"id"`
	Name                    *string  `json:"name"`
	Description             *string  `json:"description"`
	DueAt                   *string  `json:"due_at"`
	PointsPossible          *float64 `json:"points_possible"`
	SubmissionTypes         []string `json:"submission_types"`
	HTMLURL                 *string  `json:"html_url"`
	HasSubmittedSubmissions bool     `json:"has_submitted_submissions"`
}

// CalendarEvent is one upcoming calendar entry.
type CalendarEvent struct {
	Title        *string `json:"title"`
	StartAt      *string `json:"start_at"`
	EndAt        *string `json:"end_at"`
	Type         *string `json:"type"`
	Description  *string `json:"description"`
	LocationName *string `json:"location_name"`
	HTMLURL      *string `json:"html_url"`
	ContextCode  *string `json:"context_code"`
}

// Announcement is one course announcement.
type Announcement struct {
	Title       *string `json:"title"`
	Message     *string `json:"message"`
	PostedAt    *string `json:"posted_at"`
	Author      *string `json:"author"`
	ContextCode *string `json:"context_code"`
	HTMLURL     *string `json:"html_url"`
}

// Grade is the grade snapshot carried by one student enrollment.
type Grade struct {
	CourseID             *int64   `json:"course_id"`
	CurrentScore         *float64 `json:"current_score"`
	FinalScore           *float64 `json:"final_score"`
	CurrentGrade         *string  `json:"current_grade"`
	FinalGrade           *string  `json:"final_grade"`
	UnpostedCurrentScore *float64 `json:"unposted_current_score"`
	UnpostedCurrentGrade *string  `json:"unposted_current_grade"`
}

// MissingAssignment is one unsubmitted assignment, tagged with its course.
type MissingAssignment struct {
	CourseName     *string  `json:"course_name"`
	CourseID       int64    `json:"course_id"`
	AssignmentID   *int64   `json:"assignment_id"`
	Name           *string  `json:"name"`
	DueAt          *string  `json:"due_at"`
	PointsPossible *float64 `json:"points_possible"`
	HTMLURL        *string  `json:"html_url"`
}

// Message is one unread inbox conversation with participants flattened to
// their display names.
type Message struct {
	ID            *int64   `json:"id"`
	Subject       *string  `json:"subject"`
	LastMessage   *string  `json:"last_message"`
	LastMessageAt *string  `json:"last_message_at"`
	MessageCount  *int     `json:"message_count"`
	Participants  []string `json:"participants"`
	ContextName   *string  `json:"context_name"`
}

// AssignmentDetails is the full view of one assignment including its rubric.
// The rubric is passed through untouched.
type AssignmentDetails struct {
	ID                      *int64            `json:"id"`
	Name                    *string           `json:"name"`
	Description             *string           `json:"description"`
	DueAt                   *string           `json:"due_at"`
	PointsPossible          *float64          `json:"points_possible"`
	SubmissionTypes         []string          `json:"submission_types"`
	AllowedAttempts         *int              `json:"allowed_attempts"`
	GradingType             *string           `json:"grading_type"`
	HTMLURL                 *string           `json:"html_url"`
	Rubric                  []json.RawMessage `json:"rubric"`
	HasSubmittedSubmissions bool              `json:"has_submitted_submissions"`
}

// Submission is the caller's own submission state for one assignment.
type Submission struct {
	ID            *int64   `json:"id"`
	AssignmentID  *int64   `json:"assignment_id"`
	SubmittedAt   *string  `json:"submitted_at"`
	WorkflowState *string  `json:"workflow_state"`
	Grade         *string  `json:"grade"`
	Score         *float64 `json:"score"`
	Attempt       *int     `json:"attempt"`
	Late          *bool    `json:"late"`
	Missing       *bool    `json:"missing"`
	Excused       *bool    `json:"excused"`
	PreviewURL    *string  `json:"preview_url"`
}

// ModuleItem is one content item inside a module.
type ModuleItem struct {
	ID       *int64  `json:"id"`
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	HTMLURL  *string `json:"html_url"`
	Position *int    `json:"position"`
}

// Module is one course module with its re-projected item list.
type Module struct {
	ID       *int64       `json:"id"`
	Name     *string      `json:"name"`
	Position *int         `json:"position"`
	UnlockAt *string      `json:"unlock_at"`
	State    *string      `json:"state"`
	Items    []ModuleItem `json:"items"`
}

// Discussion is one discussion topic. CourseName is set only on the fan-out
// path where topics from several courses are merged.
type Discussion struct {
	ID             *int64  `json:"id"`
	Title          *string `json:"title"`
	Message        *string `json:"message"`
	PostedAt       *string `json:"posted_at"`
	DiscussionType *string `json:"discussion_type"`
	UnreadCount    *int    `json:"unread_count"`
	HTMLURL        *string `json:"html_url"`
	CourseName     *string `json:"course_name"`
}

// Quiz is one quiz. CourseName and CourseID are set only on the fan-out path.
type Quiz struct {
	ID             *int64   `json:"id"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	DueAt          *string  `json:"due_at"`
	LockAt         *string  `json:"lock_at"`
	UnlockAt       *string  `json:"unlock_at"`
	PointsPossible *float64 `json:"points_possible"`
	QuestionCount  *int     `json:"question_count"`
	TimeLimit      *int     `json:"time_limit"`
	HTMLURL        *string  `json:"html_url"`
	CourseName     *string  `json:"course_name"`
	CourseID       *int64   `json:"course_id"`
}

// Notification is one activity-stream entry.
type Notification struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	Message     *string `json:"message"`
	Type        *string `json:"type"`
	CreatedAt   *string `json:"created_at"`
	HTMLURL     *string `json:"html_url"`
	ContextType *string `json:"context_type"`
}

// Syllabus is the syllabus view of one course.
type Syllabus struct {
	CourseID     *int64  `json:"course_id"`
	CourseName   *string `json:"course_name"`
	CourseCode   *string `json:"course_code"`
	SyllabusBody *string `json:"syllabus_body"`
	StartAt      *string `json:"start_at"`
	EndAt        *string `json:"end_at"`
	TimeZone     *string `json:"time_zone"`
}

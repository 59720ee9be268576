package usecase

import "encoding/json"

// Wire shapes for the Canvas responses. Only the fields the projections need
// are declared; everything else in the upstream payload is dropped at decode
// time.

type coursePayload struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

type plannerItem struct {
	PlannableType string           `json:"plannable_type"`
	CourseID      *int64           `json:"course_id"`
	HTMLURL       *string          `json:"html_url"`
	Plannable     plannerPlannable `json:"plannable"`
}

type plannerPlannable struct {
	ID             *int64   `json:"id"`
	Title          *string  `json:"title"`
	DueAt          *string  `json:"due_at"`
	PointsPossible *float64 `json:"points_possible"`
}

type todoPayload struct {
	Type              *string        `json:"type"`
	NeedsGradingCount int            `json:"needs_grading_count"`
	Assignment        todoAssignment `json:"assignment"`
}

type todoAssignment struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	DueAt    *string `json:"due_at"`
	CourseID *int64  `json:"course_id"`
	HTMLURL  *string `json:"html_url"`
}

type dashboardCard struct {
	ID           *int64  `json:"id"`
	CourseCode   *string `json:"course_code"`
	ShortName    *string `json:"shortName"`
	OriginalName *string `json:"originalName"`
	Href         *string `json:"href"`
}

type assignmentPayload struct {
	ID                      *int64            `json:"id"`
	Name                    *string           `json:"name"`
	Description             *string           `json:"description"`
	DueAt                   *string           `json:"due_at"`
	PointsPossible          *float64          `json:"points_possible"`
	SubmissionTypes         []string          `json:"submission_types"`
	HTMLURL                 *string           `json:"html_url"`
	HasSubmittedSubmissions bool              `json:"has_submitted_submissions"`
	AllowedAttempts         *int              `json:"allowed_attempts"`
	GradingType             *string           `json:"grading_type"`
	Rubric                  []json.RawMessage `json:"rubric"`
}

type eventPayload struct {
	Title        *string `json:"title"`
	StartAt      *string `json:"start_at"`
	EndAt        *string `json:"end_at"`
	Type         *string `json:"type"`
	Description  *string `json:"description"`
	LocationName *string `json:"location_name"`
	HTMLURL      *string `json:"html_url"`
	ContextCode  *string `json:"context_code"`
}

type announcementPayload struct {
	Title       *string             `json:"title"`
	Message     *string             `json:"message"`
	PostedAt    *string             `json:"posted_at"`
	Author      *announcementAuthor `json:"author"`
	ContextCode *string             `json:"context_code"`
	HTMLURL     *string             `json:"html_url"`
}

type announcementAuthor struct {
	DisplayName *string `json:"display_name"`
}

type enrollmentPayload struct {
	Type     string           `json:"type"`
	CourseID *int64           `json:"course_id"`
	Grades   enrollmentGrades `json:"grades"`
}

type enrollmentGrades struct {
	CurrentScore         *float64 `json:"current_score"`
	FinalScore           *float64 `json:"final_score"`
	CurrentGrade         *string  `json:"current_grade"`
	FinalGrade           *string  `json:"final_grade"`
	UnpostedCurrentScore *float64 `json:"unposted_current_score"`
	UnpostedCurrentGrade *string  `json:"unposted_current_grade"`
}

type conversationPayload struct {
	ID            *int64                    `json:"id"`
	Subject       *string                   `json:"subject"`
	LastMessage   *string                   `json:"last_message"`
	LastMessageAt *string                   `json:"last_message_at"`
	MessageCount  *int                      `json:"message_count"`
	Participants  []conversationParticipant `json:"participants"`
	ContextName   *string                   `json:"context_name"`
}

type conversationParticipant struct {
	Name *string `json:"name"`
}

type submissionPayload struct {
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

type modulePayload struct {
	ID       *int64              `json:"id"`
	Name     *string             `json:"name"`
	Position *int                `json:"position"`
	UnlockAt *string             `json:"unlock_at"`
	State    *string             `json:"state"`
	Items    []moduleItemPayload `json:"items"`
}

type moduleItemPayload struct {
	ID       *int64  `json:"id"`
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	HTMLURL  *string `json:"html_url"`
	Position *int    `json:"position"`
}

type discussionPayload struct {
	ID             *int64  `json:"id"`
	Title          *string `json:"title"`
	Message        *string `json:"message"`
	PostedAt       *string `json:"posted_at"`
	DiscussionType *string `json:"discussion_type"`
	UnreadCount    *int    `json:"unread_count"`
	HTMLURL        *string `json:"html_url"`
}

type quizPayload struct {
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
}

type activityItem struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	Message     *string `json:"message"`
	Type        *string `json:"type"`
	CreatedAt   *string `json:"created_at"`
	HTMLURL     *string `json:"html_url"`
	ContextType *string `json:"context_type"`
}

type courseDetailPayload struct {
	ID           *int64  `json:"id"`
	Name         *string `json:"name"`
	CourseCode   *string `json:"course_code"`
	SyllabusBody *string `json:"syllabus_body"`
	StartAt      *string `json:"start_at"`
	EndAt        *string `json:"end_at"`
	TimeZone     *string `json:"time_zone"`
}

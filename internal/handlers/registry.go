package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	CourseHandler    *CourseHandler
	LessonHandler    *LessonHandler
	DashboardHandler *DashboardHandler
}

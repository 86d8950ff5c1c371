package services

// ServiceContainer bundles every service for injection into handlers.
type ServiceContainer struct {
	Auth      AuthService
	Course    CourseService
	Lesson    LessonService
	Dashboard DashboardService
}

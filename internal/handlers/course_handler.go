package handlers

import (
	"fitstream_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

// RegisterRoutes attaches the catalog read endpoints. The caller is
// expected to pass an already authenticated group.
func (h *CourseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	courses := rg.Group("/courses")
	{
		courses.GET("", h.ListCourses)
		courses.GET("/:id", h.GetCourse)
	}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	courses, err := h.courseService.ListCourses(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	courseID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	course, err := h.courseService.GetCourse(db, userID, courseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, course)
}

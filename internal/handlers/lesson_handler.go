package handlers

import (
	"fitstream_backend/internal/services"
	"fitstream_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	*BaseHandler
	courseService services.CourseService
	lessonService services.LessonService
}

func NewLessonHandler(base *BaseHandler, courseService services.CourseService, lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   base,
		courseService: courseService,
		lessonService: lessonService,
	}
}

func (h *LessonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lessons := rg.Group("/lessons")
	{
		lessons.GET("/:id", h.GetLesson)
		lessons.POST("/:id/favorite", h.ToggleFavorite)
		lessons.POST("/:id/like", h.ToggleLike)
		lessons.POST("/:id/complete", h.ToggleComplete)
		lessons.PUT("/:id/position", h.UpdatePosition)
	}
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	userID, lessonID, ok := h.lessonRequest(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	lesson, err := h.courseService.GetLesson(db, userID, lessonID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, lesson)
}

func (h *LessonHandler) ToggleFavorite(c *gin.Context) {
	userID, lessonID, ok := h.lessonRequest(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	newValue, err := h.lessonService.ToggleFavorite(db, userID, lessonID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dto.ToggleResponse{IsFavorite: &newValue})
}

func (h *LessonHandler) ToggleLike(c *gin.Context) {
	userID, lessonID, ok := h.lessonRequest(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	newValue, err := h.lessonService.ToggleLike(db, userID, lessonID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dto.ToggleResponse{IsLiked: &newValue})
}

func (h *LessonHandler) ToggleComplete(c *gin.Context) {
	userID, lessonID, ok := h.lessonRequest(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	newValue, err := h.lessonService.ToggleComplete(db, userID, lessonID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dto.ToggleResponse{IsCompleted: &newValue})
}

func (h *LessonHandler) UpdatePosition(c *gin.Context) {
	userID, lessonID, ok := h.lessonRequest(c)
	if !ok {
		return
	}

	var req dto.UpdatePositionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.lessonService.UpdatePosition(db, userID, lessonID, req.PositionSeconds); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dto.PositionResponse{LastPositionSeconds: req.PositionSeconds})
}

// lessonRequest pulls the authenticated user and the :id path param,
// writing the error response itself when either is missing.
func (h *LessonHandler) lessonRequest(c *gin.Context) (userID, lessonID string, ok bool) {
	userID, ok = h.GetAndAuthorizeUserID(c)
	if !ok {
		return "", "", false
	}

	lessonID, ok = h.RequireParam(c, "id")
	if !ok {
		return "", "", false
	}

	return userID, lessonID, true
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/pdf"
	"coursehub/internal/repositories"
	"coursehub/internal/services"
)

type CourseHandler struct {
	Service   *services.CourseService
	CentreSvc *services.CentreService
	Sheets    pdf.Generator
}

type courseRequest struct {
	CategoryID        int    `json:"category_id" binding:"required"`
	EducationCentreID int    `json:"education_centre_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	PriceMonth        int    `json:"price_month" binding:"required,min=0"`
	EducationType     string `json:"education_type"`
	DurationMonths    int    `json:"duration_months"`
}

func NewCourseHandler(service *services.CourseService, centreSvc *services.CentreService, sheets pdf.Generator) *CourseHandler {
	return &CourseHandler{Service: service, CentreSvc: centreSvc, Sheets: sheets}
}

// @Summary      Создание курса
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        course  body      courseRequest  true  "Курс"
// @Success      201     {object}  models.Course
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course := &models.Course{
		CategoryID:        req.CategoryID,
		EducationCentreID: req.EducationCentreID,
		Name:              req.Name,
		Description:       req.Description,
		PriceMonth:        req.PriceMonth,
		EducationType:     req.EducationType,
		DurationMonths:    req.DurationMonths,
	}
	if err := h.Service.Create(course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// @Summary      Курс по ID
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID курса"
// @Success      200  {object}  models.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	course, err := h.Service.GetByID(id)
	if err != nil || course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// @Summary      Обновление курса
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "ID курса"
// @Param        course  body      courseRequest  true  "Курс"
// @Success      200     {object}  models.Course
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.CategoryID = req.CategoryID
	existing.EducationCentreID = req.EducationCentreID
	existing.Name = req.Name
	existing.Description = req.Description
	existing.PriceMonth = req.PriceMonth
	existing.EducationType = req.EducationType
	existing.DurationMonths = req.DurationMonths
	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Удаление курса
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID курса"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// @Summary      Каталог курсов
// @Tags         Catalog
// @Produce      json
// @Param        category          query     int     false  "ID категории"
// @Param        education_centre  query     int     false  "ID учебного центра"
// @Param        price_month       query     int     false  "Точная цена в месяц"
// @Param        max_price         query     int     false  "Цена в месяц не выше"
// @Param        education_type    query     string  false  "offline / online / hybrid"
// @Param        search            query     string  false  "Поиск по подстроке"
// @Param        sort_by           query     string  false  "name / price_month / duration_months"
// @Param        order             query     string  false  "asc / desc"
// @Success      200               {array}   models.Course
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	f := repositories.CourseFilter{
		CategoryID:    intQuery(c, "category"),
		CentreID:      intQuery(c, "education_centre"),
		PriceMonth:    intQuery(c, "price_month"),
		MaxPriceMonth: intQuery(c, "max_price"),
		EducationType: c.Query("education_type"),
		Search:        c.Query("search"),
		SortBy:        c.Query("sort_by"),
		Order:         c.Query("order"),
	}
	courses, err := h.Service.Filter(f, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// @Summary      Печатная карточка курса (PDF)
// @Tags         Catalog
// @Produce      application/pdf
// @Param        id  path  int  true  "ID курса"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id}/sheet [get]
func (h *CourseHandler) Sheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	course, err := h.Service.GetByID(id)
	if err != nil || course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	centreName := ""
	if centre, err := h.CentreSvc.GetByID(course.EducationCentreID); err == nil && centre != nil {
		centreName = centre.Name
	}

	path, err := h.Sheets.GenerateCourseSheet(pdf.CourseSheetData{
		CourseID:       course.ID,
		Name:           course.Name,
		Description:    course.Description,
		CentreName:     centreName,
		PriceMonth:     course.PriceMonth,
		EducationType:  course.EducationType,
		DurationMonths: course.DurationMonths,
	})
	if err != nil {
		log.Printf("[course][sheet] generation failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate sheet"})
		return
	}
	c.FileAttachment(path, "course.pdf")
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/services"
)

type CentreHandler struct {
	Service *services.CentreService
}

type centreRequest struct {
	CategoryID  int    `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Rate        int    `json:"rate" binding:"omitempty,min=1,max=5"`
	Experience  int    `json:"experience"`
}

func NewCentreHandler(service *services.CentreService) *CentreHandler {
	return &CentreHandler{Service: service}
}

// @Summary      Создание учебного центра
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        centre  body      centreRequest  true  "Учебный центр"
// @Success      201     {object}  models.EducationCentre
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /education-centres [post]
func (h *CentreHandler) Create(c *gin.Context) {
	var req centreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	centre := &models.EducationCentre{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
		Experience:  req.Experience,
	}
	if err := h.Service.Create(centre); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, centre)
}

// @Summary      Учебный центр по ID
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID центра"
// @Success      200  {object}  models.EducationCentre
// @Failure      404  {object}  map[string]string
// @Router       /education-centres/{id} [get]
func (h *CentreHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	centre, err := h.Service.GetByID(id)
	if err != nil || centre == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "education centre not found"})
		return
	}
	c.JSON(http.StatusOK, centre)
}

// @Summary      Обновление учебного центра
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "ID центра"
// @Param        centre  body      centreRequest  true  "Учебный центр"
// @Success      200     {object}  models.EducationCentre
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /education-centres/{id} [put]
func (h *CentreHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "education centre not found"})
		return
	}

	var req centreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.CategoryID = req.CategoryID
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Rate = req.Rate
	existing.Experience = req.Experience
	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Удаление учебного центра
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID центра"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /education-centres/{id} [delete]
func (h *CentreHandler) Delete(c *gin.Context) {
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

// @Summary      Список учебных центров
// @Tags         Catalog
// @Produce      json
// @Param        category    query     int     false  "ID категории"
// @Param        rate        query     int     false  "Рейтинг 1..5"
// @Param        experience  query     int     false  "Лет на рынке"
// @Param        search      query     string  false  "Поиск по подстроке"
// @Success      200         {array}   models.EducationCentre
// @Router       /education-centres [get]
func (h *CentreHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	centres, err := h.Service.List(
		intQuery(c, "category"),
		intQuery(c, "rate"),
		intQuery(c, "experience"),
		c.Query("search"),
		limit, offset,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, centres)
}

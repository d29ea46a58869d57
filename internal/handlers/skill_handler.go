package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/services"
)

type SkillHandler struct {
	Service *services.SkillService
}

type skillRequest struct {
	CategoryID int    `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func NewSkillHandler(service *services.SkillService) *SkillHandler {
	return &SkillHandler{Service: service}
}

// @Summary      Создание навыка
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        skill  body      skillRequest  true  "Навык"
// @Success      201    {object}  models.Skill
// @Failure      400    {object}  map[string]string
// @Security     BearerAuth
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skill := &models.Skill{CategoryID: req.CategoryID, Name: req.Name}
	if err := h.Service.Create(skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// @Summary      Навык по ID
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID навыка"
// @Success      200  {object}  models.Skill
// @Failure      404  {object}  map[string]string
// @Router       /skills/{id} [get]
func (h *SkillHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	skill, err := h.Service.GetByID(id)
	if err != nil || skill == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
		return
	}
	c.JSON(http.StatusOK, skill)
}

// @Summary      Обновление навыка
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id     path      int           true  "ID навыка"
// @Param        skill  body      skillRequest  true  "Навык"
// @Success      200    {object}  models.Skill
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.CategoryID = req.CategoryID
	existing.Name = req.Name
	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Удаление навыка
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID навыка"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
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

// List — ?category=, ?name=, ?search=.
//
// @Summary      Список навыков
// @Tags         Catalog
// @Produce      json
// @Param        category  query     int     false  "ID категории"
// @Param        name      query     string  false  "Точное имя"
// @Param        search    query     string  false  "Поиск по подстроке"
// @Success      200       {array}   models.Skill
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	skills, err := h.Service.List(intQuery(c, "category"), c.Query("name"), c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, skills)
}

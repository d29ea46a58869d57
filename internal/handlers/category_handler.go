package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: service}
}

// @Summary      Создание категории
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        category  body      categoryRequest  true  "Категория"
// @Success      201       {object}  models.Category
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := &models.Category{Name: req.Name}
	if err := h.Service.Create(category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary      Категория по ID
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID категории"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	category, err := h.Service.GetByID(id)
	if err != nil || category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary      Обновление категории
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "ID категории"
// @Param        category  body      categoryRequest  true  "Категория"
// @Success      200       {object}  models.Category
// @Failure      404       {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Удаление категории
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID категории"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
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

// List — ?name= точное совпадение, ?search= подстрока.
//
// @Summary      Список категорий
// @Tags         Catalog
// @Produce      json
// @Param        name    query     string  false  "Точное имя"
// @Param        search  query     string  false  "Поиск по подстроке"
// @Success      200     {array}   models.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	categories, err := h.Service.List(c.Query("name"), c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

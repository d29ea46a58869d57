package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursehub/internal/models"
	"coursehub/internal/services"
)

type BranchHandler struct {
	Service *services.BranchService
}

type branchRequest struct {
	EducationCentreID int    `json:"education_centre_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address" binding:"required"`
	Phone             string `json:"phone"`
}

func NewBranchHandler(service *services.BranchService) *BranchHandler {
	return &BranchHandler{Service: service}
}

// @Summary      Создание филиала
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        branch  body      branchRequest  true  "Филиал"
// @Success      201     {object}  models.Branch
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /branches [post]
func (h *BranchHandler) Create(c *gin.Context) {
	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	branch := &models.Branch{
		EducationCentreID: req.EducationCentreID,
		Name:              req.Name,
		Address:           req.Address,
		Phone:             req.Phone,
	}
	if err := h.Service.Create(branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, branch)
}

// @Summary      Филиал по ID
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID филиала"
// @Success      200  {object}  models.Branch
// @Failure      404  {object}  map[string]string
// @Router       /branches/{id} [get]
func (h *BranchHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	branch, err := h.Service.GetByID(id)
	if err != nil || branch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "branch not found"})
		return
	}
	c.JSON(http.StatusOK, branch)
}

// @Summary      Обновление филиала
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "ID филиала"
// @Param        branch  body      branchRequest  true  "Филиал"
// @Success      200     {object}  models.Branch
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /branches/{id} [put]
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "branch not found"})
		return
	}

	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.EducationCentreID = req.EducationCentreID
	existing.Name = req.Name
	existing.Address = req.Address
	existing.Phone = req.Phone
	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Удаление филиала
// @Tags         Catalog
// @Produce      json
// @Param        id   path      int  true  "ID филиала"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /branches/{id} [delete]
func (h *BranchHandler) Delete(c *gin.Context) {
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

// @Summary      Список филиалов
// @Tags         Catalog
// @Produce      json
// @Param        education_centre  query     int     false  "ID учебного центра"
// @Param        search            query     string  false  "Поиск по подстроке"
// @Success      200               {array}   models.Branch
// @Router       /branches [get]
func (h *BranchHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	branches, err := h.Service.List(intQuery(c, "education_centre"), c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, branches)
}

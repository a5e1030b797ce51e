package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restomenu/internal/pkg/response"
	"restomenu/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeactivateCategory)
	}

	subcategories := rg.Group("/subcategories")
	{
		subcategories.POST("", h.CreateSubcategory)
		subcategories.GET("", h.ListSubcategories)
		subcategories.GET("/:id", h.GetSubcategory)
		subcategories.PATCH("/:id", h.UpdateSubcategory)
		subcategories.DELETE("/:id", h.DeactivateSubcategory)
	}

	items := rg.Group("/items")
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListItems)
		items.GET("/:id", h.GetItem)
		items.PATCH("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeactivateItem)
	}
}

// bind decodes and validates a JSON body, writing the error response itself.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", errs)
		return false
	}
	return true
}

func parseListQuery(c *gin.Context) ListQuery {
	q := ListQuery{
		SortBy:        c.DefaultQuery("sortBy", "created_at"),
		SortOrder:     c.DefaultQuery("sortOrder", "desc"),
		CategoryID:    c.Query("categoryId"),
		SubcategoryID: c.Query("subcategoryId"),
		Q:             c.Query("q"),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	if v, err := strconv.ParseBool(c.Query("activeOnly")); err == nil {
		q.ActiveOnly = v
	}
	return q
}

/* ---------- CATEGORY HANDLERS ---------- */

// CreateCategory handles POST /categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !bind(c, &req) {
		return
	}
	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

// ListCategories handles GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	page, err := h.service.ListCategories(c.Request.Context(), parseListQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetCategory(c *gin.Context) {
	cat, err := h.service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if !bind(c, &req) {
		return
	}
	cat, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

// DeactivateCategory handles DELETE /categories/:id (soft delete)
func (h *Handler) DeactivateCategory(c *gin.Context) {
	if err := h.service.SetCategoryActive(c.Request.Context(), c.Param("id"), false); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_active": false})
}

/* ---------- SUBCATEGORY HANDLERS ---------- */

func (h *Handler) CreateSubcategory(c *gin.Context) {
	var req CreateSubcategoryRequest
	if !bind(c, &req) {
		return
	}
	sub, err := h.service.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

func (h *Handler) ListSubcategories(c *gin.Context) {
	page, err := h.service.ListSubcategories(c.Request.Context(), parseListQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetSubcategory(c *gin.Context) {
	sub, err := h.service.GetSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) UpdateSubcategory(c *gin.Context) {
	var req UpdateSubcategoryRequest
	if !bind(c, &req) {
		return
	}
	sub, err := h.service.UpdateSubcategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) DeactivateSubcategory(c *gin.Context) {
	if err := h.service.SetSubcategoryActive(c.Request.Context(), c.Param("id"), false); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_active": false})
}

/* ---------- ITEM HANDLERS ---------- */

func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if !bind(c, &req) {
		return
	}
	it, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, it)
}

// ListItems handles GET /items with effective active/tax per item
func (h *Handler) ListItems(c *gin.Context) {
	page, err := h.service.ListItems(c.Request.Context(), parseListQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetItem(c *gin.Context) {
	it, err := h.service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, it)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if !bind(c, &req) {
		return
	}
	it, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, it)
}

func (h *Handler) DeactivateItem(c *gin.Context) {
	if err := h.service.SetItemActive(c.Request.Context(), c.Param("id"), false); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_active": false})
}

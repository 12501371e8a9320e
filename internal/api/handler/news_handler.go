package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-backend/internal/core/ports"
)

// NewsHandler handles HTTP requests for news articles.
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List handles GET /api/News.
//
// @Summary      List all news, newest first
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   newsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/News [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsListResponse(items))
}

// Get handles GET /api/News/:id.
//
// @Summary      Get a news article by id
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "News id"
// @Success      200  {object}  newsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/News/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return err
	}

	item, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(*item))
}

// Create handles POST /api/News.
//
// @Summary      Create a news article
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      newsRequest  true  "Article fields"
// @Success      201   {object}  newsResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/News [post]
func (h *NewsHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ident, ports.NewsInput{
		Header: req.Header,
		Detail: req.Detail,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/News/%d", item.ID))
	return c.JSON(http.StatusCreated, toNewsResponse(*item))
}

// Update handles PATCH /api/News/:id.
//
// @Summary      Update a news article
// @Tags         news
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "News id"
// @Param        body  body  newsRequest  true  "Article fields"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/News/{id} [patch]
func (h *NewsHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := newsID(c)
	if err != nil {
		return err
	}

	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), ident, id, ports.NewsInput{
		Header: req.Header,
		Detail: req.Detail,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/News/:id.
//
// @Summary      Delete a news article
// @Tags         news
// @Security     BearerAuth
// @Param        id  path  int  true  "News id"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/News/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := newsID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func newsID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid news id")
	}
	return id, nil
}

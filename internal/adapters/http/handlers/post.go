package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senibo/blog-api/internal/adapters/http/dto"
	"github.com/senibo/blog-api/internal/app"
)

// PostHandler handles the blog post HTTP endpoints.
type PostHandler struct {
	service *app.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(service *app.PostService) *PostHandler {
	return &PostHandler{
		service: service,
	}
}

// ListPosts handles GET /api/v1/posts
// Returns all posts, or only those matching the optional searchTerm
// query parameter as a case-insensitive substring of title or content.
//
// @Summary List blog posts
// @Description Lists all posts, optionally filtered by a search term
// @Tags posts
// @Produce json,xml
// @Param searchTerm query string false "Keyword filter on title and content"
// @Success 200 {object} dto.Response
// @Router /api/v1/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusOK,
		dto.NewSuccessResponse(dto.NewPostResponses(posts), "All posts retrieved successfully"))
}

// GetPost handles GET /api/v1/posts/:id
//
// @Summary Get a blog post
// @Description Fetches a single post by its identifier
// @Tags posts
// @Produce json,xml
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusOK,
		dto.NewSuccessResponse(dto.NewPostResponse(*post), "Post retrieved successfully"))
}

// CreatePost handles POST /api/v1/posts
// Accepts a JSON or XML body per the declared content type.
//
// @Summary Create a blog post
// @Description Validates and persists a new post with its tags
// @Tags posts
// @Accept json,xml
// @Produce json,xml
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 415 {object} dto.Response
// @Router /api/v1/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostRequest
	if err := dto.BindPostRequest(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated,
		dto.NewSuccessResponse(dto.NewPostResponse(*post), "Blog post created successfully"))
}

// UpdatePost handles PUT /api/v1/posts/:id
// Replaces title, content, category, and tags wholesale.
//
// @Summary Update a blog post
// @Description Replaces the post's fields and tag set
// @Tags posts
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 415 {object} dto.Response
// @Router /api/v1/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.PostRequest
	if err := dto.BindPostRequest(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusOK,
		dto.NewSuccessResponse(dto.NewPostResponse(*post), "Blog post updated successfully"))
}

// DeletePost handles DELETE /api/v1/posts/:id
// Deleting an already-deleted id reports not found, never silent success.
//
// @Summary Delete a blog post
// @Description Removes the post and its tag relationships
// @Tags posts
// @Param id path string true "Post ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respond writes a success envelope in the client's accepted format.
func (h *PostHandler) respond(c *gin.Context, status int, resp *dto.Response) {
	format, err := dto.ResponseFormat(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.Render(c, status, format, resp)
}

// RegisterPostRoutes registers the post routes on the given router group.
func (h *PostHandler) RegisterPostRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.ListPosts)
	posts.GET("/:id", h.GetPost)
	posts.POST("", h.CreatePost)
	posts.PUT("/:id", h.UpdatePost)
	posts.DELETE("/:id", h.DeletePost)
}

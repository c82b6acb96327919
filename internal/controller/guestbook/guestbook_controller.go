package guestbook

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/birthday-wall/internal/controller"
	"github.com/lshigami/birthday-wall/internal/dto"
	"github.com/lshigami/birthday-wall/internal/service"
	"github.com/rs/zerolog/log"
)

type GuestbookController struct {
	postService service.BirthdayPostService
}

func NewGuestbookController(ps service.BirthdayPostService) *GuestbookController {
	return &GuestbookController{postService: ps}
}

// ListPosts godoc
// @Summary List birthday posts
// @Description All posts on the wall, newest first.
// @Tags Birthday Posts
// @Produce json
// @Success 200 {object} dto.BirthdayPostListResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch posts"
// @Router /birthday-posts [get]
func (c *GuestbookController) ListPosts(ctx *gin.Context) {
	posts, err := c.postService.ListPosts(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to fetch posts", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BirthdayPostListResponse{Success: true, Posts: posts})
}

// CreatePost godoc
// @Summary Create a birthday post
// @Description Stores a message with optional image URLs already uploaded to blob storage.
// @Tags Birthday Posts
// @Accept json
// @Produce json
// @Param post body dto.BirthdayPostCreateDTO true "Author, message and image URLs"
// @Success 200 {object} dto.BirthdayPostResponse
// @Failure 400 {object} dto.ErrorResponse "Name and message are required"
// @Failure 500 {object} dto.ErrorResponse "Failed to create post"
// @Router /birthday-posts [post]
func (c *GuestbookController) CreatePost(ctx *gin.Context) {
	var req dto.BirthdayPostCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreatePost: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Name and message are required", Details: err.Error()})
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create post", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BirthdayPostResponse{Success: true, Post: *post})
}

package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"short-video-backend/pkg/auth"
	"short-video-backend/pkg/kakao"
	"short-video-backend/pkg/models"
	"short-video-backend/pkg/repository"
	"short-video-backend/pkg/s3"
	"short-video-backend/pkg/service"
)

type Handler struct {
	users  *service.UserService
	videos *service.VideoService
	tokens *auth.TokenProvider
}

func New(users *service.UserService, videos *service.VideoService, tokens *auth.TokenProvider) *Handler {
	return &Handler{users: users, videos: videos, tokens: tokens}
}

// RegisterRoutes wires the HTTP surface. Upload and delete sit behind the
// bearer-token gate.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/signin", h.Signin)
	}

	api := r.Group("/api")
	{
		api.GET("/videos", h.VideoList)
		api.GET("/videos/paging", h.VideoPaging)
		api.GET("/videos/:idx", h.VideoDetail)
		api.POST("/videos/filter", h.VideoFilter)

		gated := api.Group("", h.RequireAuth)
		{
			gated.POST("/videos/upload/embed", h.UploadEmbed)
			gated.POST("/videos/upload/direct", h.UploadDirect)
			gated.DELETE("/videos/:idx", h.DeleteVideo)
		}
	}
}

// RequireAuth verifies the bearer token on every gated request and stores
// the asserted email in the request context.
func (h *Handler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}
	email, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	c.Set("email", email)
	c.Next()
}

type signupRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.users.RegisterFromOAuth(req.AccessToken); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

func (h *Handler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Login failed."})
		return
	}
	res, err := h.users.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Login failed."})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) VideoList(c *gin.Context) {
	infos, err := h.videos.AllVideos()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, infos)
}

func (h *Handler) VideoDetail(c *gin.Context) {
	idx, err := strconv.ParseInt(c.Param("idx"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video idx"})
		return
	}
	info, err := h.videos.VideoByIdx(idx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) VideoPaging(c *gin.Context) {
	lastIdx, err := strconv.ParseInt(c.Query("lastVideoIdx"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lastVideoIdx"})
		return
	}
	size, err := strconv.Atoi(c.Query("size"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
		return
	}
	infos, err := h.videos.PageAfter(lastIdx, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, infos)
}

func (h *Handler) VideoFilter(c *gin.Context) {
	var req service.VideoFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	infos, err := h.videos.Filter(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, infos)
}

// UploadEmbed saves an externally hosted video; the type is forced server
// side.
func (h *Handler) UploadEmbed(c *gin.Context) {
	var dto service.VideoUploadDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	dto.VideoType = string(models.VideoTypeEmbed)
	info, err := h.videos.SaveUpload(dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// UploadDirect stores the media files first, then saves the video with the
// resolved URLs. An empty file part yields an empty URL, never a null field.
func (h *Handler) UploadDirect(c *gin.Context) {
	var dto service.VideoUploadDto
	if err := json.Unmarshal([]byte(c.PostForm("info")), &dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid info part"})
		return
	}

	videoPath, err := h.uploadPart(c, "videoFile", s3.PrefixShortVideo)
	if err != nil {
		h.fail(c, err)
		return
	}
	thumbPath, err := h.uploadPart(c, "thumbFile", s3.PrefixVideoThumbnail)
	if err != nil {
		h.fail(c, err)
		return
	}

	dto.VideoURL = videoPath
	dto.ThumbURL = thumbPath
	dto.VideoType = string(models.VideoTypeDirect)
	info, err := h.videos.SaveUpload(dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// uploadPart sends one multipart file to object storage. A missing or empty
// part maps to "".
func (h *Handler) uploadPart(c *gin.Context, field, prefix string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil || header.Size == 0 {
		return "", nil
	}
	file, err := header.Open()
	if err != nil {
		return "", errors.Wrapf(err, "open %s part", field)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)
	return s3.UploadFile(file, header, prefix)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	idx, err := strconv.ParseInt(c.Param("idx"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video idx"})
		return
	}
	if err := h.videos.DeleteVideo(idx); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Video deleted"})
}

// fail maps service errors onto HTTP statuses: not-found to 404, upstream
// collaborators to 502, bad wire values to 400, everything else to 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, repository.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
	case errors.Is(err, models.ErrInvalidVideoType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video type"})
	case errors.Is(err, kakao.ErrUpstreamUnavailable), errors.Is(err, s3.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

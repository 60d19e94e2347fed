package handler

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/service"
	"github.com/maxzok/hw05-final/pkg/utils"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		feed := v1.Group("/feed")
		{
			feed.GET("", h.notRequiredAuthMiddleware, h.feedGlobal)
			feed.GET("/following", h.authMiddleware, h.feedFollowing)
			feed.DELETE("/cache", h.moderatorMiddleware, h.feedCacheClear)
		}

		groups := v1.Group("/groups")
		{
			groups.GET("", h.groupsGetAll)
			groups.POST("", h.moderatorMiddleware, h.groupsCreate)
			groups.GET("/:slug/posts", h.groupsGetPosts)
			groups.DELETE("/:slug", h.moderatorMiddleware, h.groupsDelete)
		}

		profiles := v1.Group("/profiles/:username")
		{
			profiles.GET("/posts", h.profilesGetPosts)
			profiles.POST("/follow", h.authMiddleware, h.profilesFollow)
			profiles.DELETE("/follow", h.authMiddleware, h.profilesUnfollow)
			profiles.GET("/isFollowing", h.authMiddleware, h.profilesIsFollowing)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.POST("/uploadImage", h.authMiddleware, h.postsUploadImage)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
				post.GET("/comments", h.commentsGet)
			}
		}
	}

	return r
}

func (h *Handler) getUserDataFromAccessToken(ctx context.Context, accessToken string) (*model.CachedUser, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	return h.services.UserCache.CreateOrGet(ctx, id, accessToken)
}

func (h *Handler) getCachedUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("cached-user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}

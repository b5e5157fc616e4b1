package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"mostface/internal/middleware"
	"mostface/internal/models"
	"mostface/internal/session"
	"mostface/internal/store"
	"mostface/internal/telemetry"
	"mostface/internal/ws"
)

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(logger)
}

type testEnv struct {
	store  *store.Store
	router *gin.Engine
}

// setupRouter builds the full route table over an in-memory store, mirroring
// the production wiring.
func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testLog()
	st := store.New(session.NewMemoryAdapter(log), log)
	hub := ws.NewHub(log)
	audit := telemetry.NewAuditEmitter(nil, "audit_logs", "mostface", "test", log)

	authHandler := NewAuthHandler(st, audit)
	feedHandler := NewFeedHandler(st, hub)
	profileHandler := NewProfileHandler(st)
	searchHandler := NewSearchHandler(st)
	marketplaceHandler := NewMarketplaceHandler(st)
	notificationHandler := NewNotificationHandler(st)
	chatHandler := NewChatHandler(st, hub)

	r := gin.New()
	sessionRequired := middleware.SessionRequired(st)

	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	r.GET("/feed", sessionRequired, feedHandler.GetFeed)
	r.POST("/posts", sessionRequired, feedHandler.CreatePost)
	r.POST("/posts/:post_id/like", sessionRequired, feedHandler.LikePost)
	r.POST("/posts/:post_id/comments", sessionRequired, feedHandler.AddComment)

	r.GET("/users/:user_id", sessionRequired, profileHandler.GetUser)
	r.GET("/users/:user_id/posts", sessionRequired, profileHandler.GetUserPosts)

	r.GET("/search", sessionRequired, searchHandler.Search)

	r.GET("/marketplace", sessionRequired, marketplaceHandler.ListItems)
	r.POST("/marketplace", sessionRequired, marketplaceHandler.CreateItem)

	r.GET("/notifications", sessionRequired, notificationHandler.List)
	r.POST("/notifications/:id/read", sessionRequired, notificationHandler.MarkRead)
	r.POST("/notifications/read-all", sessionRequired, notificationHandler.MarkAllRead)

	r.GET("/chats", sessionRequired, chatHandler.ListChats)
	r.POST("/chats/open", sessionRequired, chatHandler.OpenChat)
	r.GET("/chats/active", sessionRequired, chatHandler.GetActive)
	r.POST("/chats/active", sessionRequired, chatHandler.SetActive)
	r.POST("/chats/:chat_id/messages", sessionRequired, chatHandler.PostMessage)
	r.POST("/chats/:chat_id/read", sessionRequired, chatHandler.MarkRead)

	return &testEnv{store: st, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login registers a user directly and makes them the session owner.
func (e *testEnv) login(t *testing.T, name string) models.User {
	t.Helper()

	id := e.store.NextID()
	user := models.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret123",
		Friends:  []int64{},
		JoinedAt: store.Timestamp(id),
	}
	ctx := context.Background()
	require.True(t, e.store.Dispatch(ctx, store.RegisterUser{User: user}))
	require.True(t, e.store.Dispatch(ctx, store.SetCurrentUser{User: &user}))
	return user
}

// register adds a directory user without touching the session.
func (e *testEnv) register(t *testing.T, name string) models.User {
	t.Helper()

	id := e.store.NextID()
	user := models.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret123",
		Friends:  []int64{},
		JoinedAt: store.Timestamp(id),
	}
	require.True(t, e.store.Dispatch(context.Background(), store.RegisterUser{User: user}))
	return user
}

// seedPost dispatches a post on the author's behalf, bypassing the session.
func (e *testEnv) seedPost(t *testing.T, author models.User, id int64, content string) {
	t.Helper()

	post := models.Post{
		ID:        id,
		AuthorID:  author.ID,
		Author:    author.Snapshot(),
		Content:   content,
		Likes:     []int64{},
		Comments:  []models.Comment{},
		CreatedAt: store.Timestamp(id),
	}
	require.True(t, e.store.Dispatch(context.Background(), store.AddPost{Post: post}))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

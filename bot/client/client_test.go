package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusMapping(t *testing.T) {
	router := gin.New()
	router.GET("/api/admin/users/:userId", func(c *gin.Context) {
		switch c.Param("userId") {
		case "1":
			c.JSON(http.StatusOK, gin.H{"userId": 1, "name": "Jordan Lee"})
		case "2":
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case "3":
			c.JSON(http.StatusUnauthorized, gin.H{"error": "nope"})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
		}
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	c := New(srv.URL, "")
	ctx := context.Background()

	u, err := c.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", u.Name)

	_, err = c.GetUser(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.GetUser(ctx, 3)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.GetUser(ctx, 4)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAdminKeyHeader(t *testing.T) {
	var gotKey string
	router := gin.New()
	router.GET("/api/admin/users", func(c *gin.Context) {
		gotKey = c.GetHeader("X-API-Key")
		c.JSON(http.StatusOK, []any{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}

func TestUploadRoomPhotosMultipart(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "room.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg-bytes"), 0o644))

	var fileCount int
	var formErr error
	router := gin.New()
	router.POST("/api/admin/room/photos", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			formErr = err
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad form"})
			return
		}
		fileCount = len(form.File["images"])
		c.JSON(http.StatusCreated, gin.H{"imageUrls": []string{"/uploads/room.jpg"}})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	c := New(srv.URL, "")
	urls, err := c.UploadRoomPhotos(context.Background(), []string{photo})
	require.NoError(t, err)
	require.NoError(t, formErr)
	assert.Equal(t, 1, fileCount)
	assert.Equal(t, []string{"/uploads/room.jpg"}, urls)
}

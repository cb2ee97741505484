package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/room"
	"stayhub/services/storage"
)

// maxRoomImages caps how many photos a single upload may carry.
const maxRoomImages = 5

// RoomHandler exposes room inventory and photo upload endpoints.
type RoomHandler struct {
	RoomService room.RoomService
	StorageSvc  storage.Service
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rs room.RoomService, ss storage.Service) *RoomHandler {
	return &RoomHandler{RoomService: rs, StorageSvc: ss}
}

// ListRoomsHandler handles GET /api/rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomService.ListRooms()
	if err != nil {
		getLogger(c).Error("Failed to fetch rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoomHandler handles POST /api/admin/room. The payload is multipart:
// scalar room fields, location and amenities as JSON strings, plus optional
// attached images and/or an imageUrls JSON field of references returned by an
// earlier photo upload. The union of both becomes the room's image list.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	roomNumber := c.PostForm("roomNumber")
	roomType := c.PostForm("type")
	priceStr := c.PostForm("price")
	if roomNumber == "" || roomType == "" || priceStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomNumber, type and price are required"})
		return
	}
	if !models.ValidRoomType(roomType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Single, Double or Shared"})
		return
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
		return
	}

	var location models.RoomLocation
	if raw := c.PostForm("location"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &location); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location must be valid JSON"})
			return
		}
	}
	var amenities []string
	if raw := c.PostForm("amenities"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amenities must be valid JSON"})
			return
		}
	}

	images, ok := h.collectImages(c)
	if !ok {
		return
	}
	if raw := c.PostForm("imageUrls"); raw != "" {
		var refs []string
		if err := json.Unmarshal([]byte(raw), &refs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrls must be valid JSON"})
			return
		}
		images = append(images, refs...)
	}

	created, err := h.RoomService.CreateRoom(models.Room{
		RoomNumber: roomNumber,
		Type:       roomType,
		Price:      price,
		Location:   location,
		Amenities:  amenities,
		Images:     images,
	})
	if err != nil {
		if err == room.ErrRoomNumberTaken {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create room", zap.String("roomNumber", roomNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UploadRoomPhotosHandler handles POST /api/admin/room/photos. It stores the
// attached images and returns their references; associating them with a room
// happens in the subsequent create-room call.
func (h *RoomHandler) UploadRoomPhotosHandler(c *gin.Context) {
	refs, ok := h.collectImages(c)
	if !ok {
		return
	}
	if len(refs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imageUrls": refs})
}

// collectImages saves all attached "images" files through the storage
// service and returns their references. On failure it writes the response
// itself and returns ok=false.
func (h *RoomHandler) collectImages(c *gin.Context) ([]string, bool) {
	logger := getLogger(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return nil, false
	}
	files := form.File["images"]
	if len(files) > maxRoomImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 5 images are allowed"})
		return nil, false
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		ref, err := h.storeImage(c, fh)
		if err != nil {
			logger.Error("Failed to store image", zap.String("file", fh.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return nil, false
		}
		refs = append(refs, ref)
	}
	return refs, true
}

// storeImage spools one multipart file to a temp path and hands it to the
// storage backend.
func (h *RoomHandler) storeImage(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	tempPath := filepath.Join(os.TempDir(), fh.Filename)
	if err := c.SaveUploadedFile(fh, tempPath); err != nil {
		return "", err
	}
	defer os.Remove(tempPath)

	return h.StorageSvc.UploadFile(c, tempPath, "rooms")
}

package v1

import (
	"net/http"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PictureFiles resolves a reference to a file on local disk.
type PictureFiles interface {
	Path(ref string) (string, bool)
}

type PictureHandler struct {
	stores map[domain.EntityKind]PictureFiles
}

// NewPictureHandler serves locally stored pictures. References are fresh
// names per upload, so responses are cacheable forever.
func NewPictureHandler(public *gin.RouterGroup, stores map[domain.EntityKind]PictureFiles) {
	handler := &PictureHandler{stores: stores}
	public.GET("/pictures/:kind/:ref", handler.Get)
}

// Get godoc
// @Summary      Download a profile picture
// @Tags         pictures
// @Produce      octet-stream
// @Param        kind  path  string  true  "user or company"
// @Param        ref   path  string  true  "Picture reference"
// @Success      200
// @Failure      404  {object}  response.Response
// @Router       /pictures/{kind}/{ref} [get]
func (h *PictureHandler) Get(c *gin.Context) {
	store, ok := h.stores[domain.EntityKind(c.Param("kind"))]
	if !ok {
		c.Error(apperror.NotFound("Picture not found"))
		return
	}

	path, ok := store.Path(c.Param("ref"))
	if !ok {
		c.Error(apperror.NotFound("Picture not found"))
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("X-Content-Type-Options", "nosniff")
	c.File(path)
	c.Status(http.StatusOK)
}

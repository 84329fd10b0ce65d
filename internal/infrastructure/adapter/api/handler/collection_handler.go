package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CollectionHandler serves the user's saved data collections
type CollectionHandler struct {
	collections usecase.CollectionUseCase
	logger      coreport.Logger
}

// NewCollectionHandler creates a new collection handler instance
func NewCollectionHandler(collections usecase.CollectionUseCase, logger coreport.Logger) *CollectionHandler {
	return &CollectionHandler{collections: collections, logger: logger}
}

// List handles GET /api/collections. Items are not included.
func (h *CollectionHandler) List(c *gin.Context) {
	cols, err := h.collections.ListCollections(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list collections", err)
		return
	}

	items := make([]dto.CollectionResponse, 0, len(cols))
	for _, col := range cols {
		resp := dto.NewCollectionResponse(col)
		resp.Items = nil
		items = append(items, resp)
	}
	respond(c, http.StatusOK, items)
}

// Get handles GET /api/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "get collection", err)
		return
	}

	col, err := h.collections.GetCollection(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, h.logger, "get collection", err)
		return
	}
	respond(c, http.StatusOK, dto.NewCollectionResponse(col))
}

// Save handles POST /api/collections
func (h *CollectionHandler) Save(c *gin.Context) {
	var req dto.SaveCollectionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "save collection", err)
		return
	}

	items := make([]usecase.CollectionItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CollectionItemInput{Key: item.Key, Value: item.Value})
	}

	col, err := h.collections.SaveCollection(c.Request.Context(), middleware.CurrentUserID(c), req.Name, "", items)
	if err != nil {
		respondError(c, h.logger, "save collection", err)
		return
	}
	respondMessage(c, http.StatusOK, "Collection saved", dto.NewCollectionResponse(col))
}

// Delete handles DELETE /api/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "delete collection", err)
		return
	}

	if err := h.collections.DeleteCollection(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, h.logger, "delete collection", err)
		return
	}
	respondMessage(c, http.StatusOK, "Collection deleted", nil)
}

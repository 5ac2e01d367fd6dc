package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"signup-cards/pkg/models"
	"signup-cards/pkg/services"
)

// Sessions is the part of the session registry the handlers rely on
type Sessions interface {
	Create() *services.Session
	Get(id string) (*services.Session, error)
	End(id string) error
}

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	sessions Sessions
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sessions Sessions) *Handlers {
	return &Handlers{
		sessions: sessions,
	}
}

type setFieldRequest struct {
	Value *string `json:"value"`
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// CreateSession starts a new form session with an empty draft and no cards
func (h *Handlers) CreateSession(c *gin.Context) {
	session := h.sessions.Create()
	snap, _ := session.Do(func(*services.FormRecordStore) error { return nil })
	c.JSON(http.StatusCreated, snapshotBody(session.ID, snap))
}

// GetSession returns the latest draft and cards
func (h *Handlers) GetSession(c *gin.Context) {
	h.withSession(c, func(session *services.Session) {
		snap, _ := session.Do(func(*services.FormRecordStore) error { return nil })
		c.JSON(http.StatusOK, snapshotBody(session.ID, snap))
	})
}

// EndSession discards the session and its records
func (h *Handlers) EndSession(c *gin.Context) {
	if err := h.sessions.End(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SetField handles a text change in one of the four inputs
func (h *Handlers) SetField(c *gin.Context) {
	field, err := models.ParseField(c.Param("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: value"})
		return
	}

	h.withSession(c, func(session *services.Session) {
		snap, _ := session.Do(func(store *services.FormRecordStore) error {
			store.SetField(field, *req.Value)
			return nil
		})
		c.JSON(http.StatusOK, snapshotBody(session.ID, snap))
	})
}

// Submit handles the Submit button
func (h *Handlers) Submit(c *gin.Context) {
	h.withSession(c, func(session *services.Session) {
		var record models.SubmittedRecord
		snap, err := session.Do(func(store *services.FormRecordStore) error {
			var submitErr error
			record, submitErr = store.Submit()
			return submitErr
		})

		if kind, ok := services.KindOf(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   kind,
				"title":   kind.Title(),
				"message": kind.Message(),
				"draft":   snap.Draft,
			})
			return
		}
		if err != nil {
			log.Printf("Error submitting session %s: %v", session.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting form"})
			return
		}

		body := snapshotBody(session.ID, snap)
		body["record"] = record
		c.JSON(http.StatusCreated, body)
	})
}

// Refresh handles the Refresh button
func (h *Handlers) Refresh(c *gin.Context) {
	h.withSession(c, func(session *services.Session) {
		snap, _ := session.Do(func(store *services.FormRecordStore) error {
			store.Refresh()
			return nil
		})
		c.JSON(http.StatusOK, snapshotBody(session.ID, snap))
	})
}

// DeleteRecord handles the delete icon on the card at :index
func (h *Handlers) DeleteRecord(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	h.withSession(c, func(session *services.Session) {
		snap, err := session.Do(func(store *services.FormRecordStore) error {
			return store.DeleteAt(index)
		})
		if errors.Is(err, services.ErrOutOfRange) {
			body := snapshotBody(session.ID, snap)
			body["error"] = "out_of_range"
			c.JSON(http.StatusNotFound, body)
			return
		}
		c.JSON(http.StatusOK, snapshotBody(session.ID, snap))
	})
}

func (h *Handlers) withSession(c *gin.Context, fn func(*services.Session)) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	fn(session)
}

func snapshotBody(id string, snap models.Snapshot) gin.H {
	return gin.H{
		"id":      id,
		"draft":   snap.Draft,
		"records": snap.Records,
	}
}

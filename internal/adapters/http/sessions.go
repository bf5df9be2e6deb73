package httpadapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type startSessionReq struct {
	UserID  uint `json:"user_id" binding:"required"`
	BoardID uint `json:"board_id" binding:"required"`
}

func (h *Handler) startSession(c *gin.Context) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.games.StartSession(c.Request.Context(), req.UserID, req.BoardID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// moveReq uses pointers so zero-valued rows and columns still satisfy
// the required bindings.
type moveReq struct {
	Row   *int `json:"row" binding:"required,gte=0,lte=8"`
	Col   *int `json:"col" binding:"required,gte=0,lte=8"`
	Value *int `json:"value" binding:"required,gte=1,lte=9"`
}

func (h *Handler) move(c *gin.Context) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.games.Move(c.Request.Context(), userID, *req.Row, *req.Col, uint8(*req.Value))
	if err != nil {
		abortErr(c, err)
		return
	}
	body := gin.H{"session": res.Session, "completed": res.Completed}
	if res.Completed {
		body["completed_board"] = res.Record
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) hint(c *gin.Context) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	hint, session, err := h.games.Hint(c.Request.Context(), userID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"row":        hint.Row,
		"col":        hint.Col,
		"value":      hint.Value,
		"hints_used": session.HintsUsed,
		"score":      session.Score,
	})
}

func (h *Handler) activeSession(c *gin.Context) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	session, err := h.games.ActiveSession(c.Request.Context(), userID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) pauseSession(c *gin.Context) { h.setPaused(c, true) }

func (h *Handler) resumeSession(c *gin.Context) { h.setPaused(c, false) }

func (h *Handler) setPaused(c *gin.Context, paused bool) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	session, err := h.games.SetPaused(c.Request.Context(), userID, paused)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) deleteSession(c *gin.Context) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	if err := h.games.Abandon(c.Request.Context(), userID); err != nil {
		abortErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) completeSession(c *gin.Context) {
	userID, ok := uintParam(c, "userID")
	if !ok {
		return
	}
	record, err := h.games.Complete(c.Request.Context(), userID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) listSessions(c *gin.Context) {
	sessions, err := h.games.ListSessions(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

package httpadapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// newGame returns a random playable board: puzzle, solution, and
// metadata for the client to start from.
func (h *Handler) newGame(c *gin.Context) {
	board, err := h.boards.NewGame(c.Request.Context(), c.DefaultQuery("difficulty", "random"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board_id":   board.ID,
		"puzzle":     board.Puzzle,
		"solution":   board.Solution,
		"difficulty": board.Difficulty,
	})
}

func (h *Handler) listBoards(c *gin.Context) {
	boards, err := h.boards.List(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *Handler) boardsByDifficulty(c *gin.Context) {
	boards, err := h.boards.List(c.Request.Context(), c.Param("difficulty"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *Handler) boardByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	board, err := h.boards.Get(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) randomBoard(c *gin.Context) {
	board, err := h.boards.NewGame(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) boardCount(c *gin.Context) {
	n, err := h.boards.Count(c.Request.Context(), c.Param("difficulty"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

type regradeReq struct {
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard expert"`
}

func (h *Handler) regradeBoard(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req regradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	board, err := h.boards.Regrade(c.Request.Context(), id, req.Difficulty)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) deleteBoard(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.boards.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package resp

import (
	"net/http"

	"backend/pkg/notice"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func OKWithNotice(c *gin.Context, data any, n notice.Notice) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data, "notice": n})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func BadRequestWithNotice(c *gin.Context, msg string, n notice.Notice) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg, "notice": n})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

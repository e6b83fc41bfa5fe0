package admin

import (
	"encoding/csv"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/importacion"
	"go.uber.org/zap"
)

// ImportUsers creates users from an uploaded CSV file
// @Summary Import users from CSV
// @Description Columns: username,email,first_name,last_name,password. Existing usernames are skipped.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} importacion.Result
// @Failure 400 {object} map[string]interface{} "Unreadable CSV"
// @Security BearerAuth
// @Router /admin/users/import [post]
func (h *Handler) ImportUsers(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	result, err := importacion.ImportUsers(h.db, f)
	h.metrics.UsersImported(result.Created, result.Skipped)
	if err != nil {
		h.log.Warn("user import stopped", zap.String("filename", fh.Filename),
			zap.Int("created", result.Created), zap.Error(err))
		var pe *csv.ParseError
		if errors.Is(err, importacion.ErrMissingUsernameColumn) || errors.As(err, &pe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "result": result})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed", "result": result})
		return
	}

	h.log.Info("users imported", zap.String("filename", fh.Filename),
		zap.Int("created", result.Created), zap.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajithkoli/portfolio/internal/contact"
)

// contactView feeds contact-form.html.
type contactView struct {
	Values     contact.Values
	Note       contact.Notification
	AutoHideMs int64
}

// handleContact runs one submission and answers with the re-rendered form.
// The fragment carries cleared fields after a send and the visitor's input
// otherwise, plus the toast.
func (s *Server) handleContact(c *gin.Context) {
	var v contact.Values
	if err := c.ShouldBind(&v); err != nil {
		s.logger.Warn("contact: bad form post", "error", err)
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	form, err := contact.New(s.sender,
		contact.WithValues(v),
		contact.WithLogger(s.logger),
		contact.WithRecorder(s.metrics),
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "contact form unavailable")
		return
	}

	// Send failures are logged by the form with the submission id.
	if outcome, err := form.Submit(c.Request.Context()); outcome == contact.Rejected {
		s.logger.Debug("contact: submission rejected", "error", err)
	}

	note := form.Notification()
	c.HTML(http.StatusOK, "contact-form.html", contactView{
		Values:     form.Values(),
		Note:       note,
		AutoHideMs: note.AutoHide.Milliseconds(),
	})
}

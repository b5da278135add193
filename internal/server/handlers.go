package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verte-zerg/termfolio/internal/contact"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/projects"
)

type timeline struct {
	Experience     []model.Experience    `json:"experience"`
	Education      []model.Education     `json:"education"`
	Certifications []model.Certification `json:"certifications"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Profile)
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Categories())
}

func (s *Server) handleProjects(c *gin.Context) {
	category := c.DefaultQuery("category", model.CategoryAll)
	records := projects.Filter(category, s.content.Projects)
	if records == nil {
		records = []model.ProjectRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, timeline{
		Experience:     s.content.Experience,
		Education:      s.content.Education,
		Certifications: s.content.Certifications,
	})
}

func (s *Server) handleContact(c *gin.Context) {
	var form model.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, contactResponse{Error: "malformed request body"})
		return
	}

	submitter := contact.NewSubmitter(s.sender)
	submitter.SetForm(form)
	normalized, err := submitter.Begin()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, contactResponse{Error: err.Error()})
		return
	}
	res := submitter.Finish(submitter.Send(c.Request.Context(), normalized))
	s.record(c, normalized, res)

	switch {
	case res.Outcome == contact.OutcomeSent:
		c.JSON(http.StatusOK, contactResponse{Success: true, Message: "Message sent successfully!"})
	case errors.Is(res.Err, contact.ErrMissingAccessKey):
		c.JSON(http.StatusServiceUnavailable, contactResponse{Error: "Contact form is not configured."})
	default:
		log.Printf("contact relay failed: %v", res.Err)
		c.JSON(http.StatusBadGateway, contactResponse{Error: "Something went wrong. Please try again."})
	}
}

func (s *Server) record(c *gin.Context, form model.ContactForm, res contact.Result) {
	if s.recorder == nil {
		return
	}
	entry := model.OutboxEntry{
		CreatedAt: s.now(),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Delivered: res.Outcome == contact.OutcomeSent,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if _, err := s.recorder.RecordMessage(c.Request.Context(), entry); err != nil {
		log.Printf("failed to record message: %v", err)
	}
}

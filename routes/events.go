package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planifevent/models"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* -------------------- Events -------------------- */

// GET /events
func (d *deps) getEvents(c *gin.Context) {
	events, err := d.events.GetAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id
func (d *deps) getEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	event, err := d.events.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /events
func (d *deps) createEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, date, location, description and category are required."})
		return
	}

	event.UserID = c.GetInt64("userId")
	if err := d.events.Create(&event, c.GetBool("isProfessional")); err != nil {
		abortWithError(c, err)
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
	}
	c.JSON(http.StatusCreated, event)
}

// PUT /events/:id
func (d *deps) updateEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, date, location, description and category are required."})
		return
	}
	event.ID = id

	if err := d.events.Update(&event, c.GetInt64("userId")); err != nil {
		abortWithError(c, err)
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c, id)
	}
	c.JSON(http.StatusOK, event)
}

// DELETE /events/:id
func (d *deps) deleteEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := d.events.Delete(id, c.GetInt64("userId")); err != nil {
		abortWithError(c, err)
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c, id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

/* ----------------- Participations ----------------- */

// POST /events/:id/attend
func (d *deps) attendEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := d.participations.Attend(id, c.GetInt64("userId")); err != nil {
		abortWithError(c, err)
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c, id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registered for event.", "eventId": id})
}

// DELETE /events/:id/unattend
func (d *deps) unattendEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := d.participations.Unattend(id, c.GetInt64("userId")); err != nil {
		abortWithError(c, err)
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c, id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unregistered from event.", "eventId": id})
}

// GET /attending-events
func (d *deps) attendingEvents(c *gin.Context) {
	events, err := d.participations.Attending(c.GetInt64("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id/participants
func (d *deps) eventParticipants(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	names, err := d.participations.Participants(id, c.GetInt64("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

package notification

import (
	"io"

	"github.com/gin-gonic/gin"
)

func NewHandler(broker *Broker) Handler {
	return Handler{broker}
}

type Handler struct {
	broker *Broker
}

// Subscribe streams outcomes
func (h Handler) Subscribe(c *gin.Context) {
	// swagger:route GET /subscribe streamOutcomes
	//
	// Stream outcomes
	//
	// Stream command outcomes as server-sent events
	//
	// responses:
	//   200: Stream
	id, channel := h.broker.Subscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	defer h.broker.Unsubscribe(id)

	go func() {
		<-c.Done()
		h.broker.Unsubscribe(id)
	}()

	c.Stream(func(w io.Writer) bool {
		if outcome, ok := <-channel; ok {
			c.SSEvent(outcome.Type, outcome.Message)
			return true
		}
		return false
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/utils"
	"github.com/mvegadev/comanda/ws"
)

type WSController struct {
	hub *ws.Hub
}

func NewWSController(hub *ws.Hub) *WSController {
	return &WSController{hub: hub}
}

// Subscribe -> upgrade the request and stream domain events to the client
func (ctrl *WSController) Subscribe(c *gin.Context) {
	role := c.GetString("role")
	if err := ctrl.hub.Upgrade(c.Writer, c.Request, role); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.InfoLogger.Printf("Websocket client connected (role=%s)", role)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// Stream -> endpoint WebSocket, ?role=kitchen|staff (default staff)
func (kc *KDSController) Stream(c *gin.Context) {
	role := c.DefaultQuery("role", "staff")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.InfoLogger.Warnf("websocket upgrade failed: %v", err)
		return
	}

	kc.Hub.RegisterClient(ws, role)

	// Baca pesan sampai client disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
}

package controller

import (
	"time"

	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController serves the host status snapshot behind the dashboard
// status widget.
type ServerController struct {
	serverService *service.ServerService

	lastStatus     *service.Status
	lastStatusTime time.Time
}

func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{
		serverService: service.NewServerService(),
	}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g.GET("/status", a.status)
}

// status returns the host snapshot, sampled at most every two seconds.
func (a *ServerController) status(c *gin.Context) {
	if a.lastStatus == nil || time.Since(a.lastStatusTime) > 2*time.Second {
		a.lastStatus = a.serverService.GetStatus()
		a.lastStatusTime = time.Now()
	}
	jsonObj(c, a.lastStatus, nil)
}

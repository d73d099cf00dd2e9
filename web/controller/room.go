package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// RoomController handles rooms and their seat maps.
type RoomController struct {
	roomService service.RoomService
}

func NewRoomController(g *gin.RouterGroup) *RoomController {
	a := &RoomController{}
	a.initRouter(g)
	return a
}

func (a *RoomController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getRooms)
	g.GET("/get/:id", a.getRoom)
	g.GET("/:id/seats", a.getSeats)

	g.POST("/add", a.addRoom)
	g.POST("/update/:id", a.updateRoom)
	g.POST("/del/:id", middleware.RequireMutate(), a.delRoom)
	g.POST("/:id/seats/add", a.addSeat)
	g.POST("/seats/:seatId/assign/:studentId", a.assignSeat)
	g.POST("/seats/:seatId/release", a.releaseSeat)
	g.POST("/seats/del/:seatId", middleware.RequireMutate(), a.delSeat)
}

func (a *RoomController) getRooms(c *gin.Context) {
	rooms, err := a.roomService.GetRooms(middleware.ScopeOrgId(c))
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, rooms, nil)
}

func (a *RoomController) getRoom(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	room, err := a.roomService.GetRoom(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, room, nil)
}

func (a *RoomController) getSeats(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	seats, err := a.roomService.GetSeats(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, seats, nil)
}

func (a *RoomController) addRoom(c *gin.Context) {
	form := &service.RoomForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	room, err := a.roomService.AddRoom(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.rooms.toasts.created"), room, nil)
}

func (a *RoomController) updateRoom(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.RoomForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	room, err := a.roomService.UpdateRoom(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.rooms.toasts.updated"), room, nil)
}

func (a *RoomController) delRoom(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.roomService.DeleteRoom(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.rooms.toasts.deleted"), nil)
}

func (a *RoomController) addSeat(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.SeatForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	seat, err := a.roomService.AddSeat(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.rooms.toasts.seatTaken")
		return
	}
	jsonObj(c, seat, nil)
}

func (a *RoomController) assignSeat(c *gin.Context) {
	seatId, ok := pathParamId(c, "seatId")
	if !ok {
		return
	}
	studentId, ok := pathParamId(c, "studentId")
	if !ok {
		return
	}
	seat, err := a.roomService.AssignSeat(middleware.ScopeOrgId(c), seatId, studentId)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.rooms.toasts.seatAssigned"), seat, nil)
}

func (a *RoomController) releaseSeat(c *gin.Context) {
	seatId, ok := pathParamId(c, "seatId")
	if !ok {
		return
	}
	seat, err := a.roomService.ReleaseSeat(middleware.ScopeOrgId(c), seatId)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.rooms.toasts.seatReleased"), seat, nil)
}

func (a *RoomController) delSeat(c *gin.Context) {
	seatId, ok := pathParamId(c, "seatId")
	if !ok {
		return
	}
	if err := a.roomService.DeleteSeat(middleware.ScopeOrgId(c), seatId); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.rooms.toasts.deleted"), nil)
}

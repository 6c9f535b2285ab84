package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVehicle(c *ginext.Context)
	ListVehicles(c *ginext.Context)
	SetVehicleActive(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	Reserve(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	RejectReservation(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	DeactivateMember(c *ginext.Context)
	GetMemberReservations(c *ginext.Context)
	CreateBlackout(c *ginext.Context)
	ListBlackouts(c *ginext.Context)
	JoinWaitlist(c *ginext.Context)
	ListWaitlist(c *ginext.Context)
	GetStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Vehicles
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.POST("/vehicles/:id/active", h.SetVehicleActive)
		api.GET("/vehicles/:id/availability", h.GetAvailability)

		// Reservations
		api.POST("/reservations", h.Reserve)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.POST("/members/:id/deactivate", h.DeactivateMember)
		api.GET("/members/:id/reservations", h.GetMemberReservations)

		// Blackouts
		api.POST("/blackouts", h.CreateBlackout)
		api.GET("/blackouts", h.ListBlackouts)

		// Waitlist
		api.POST("/waitlist", h.JoinWaitlist)
		api.GET("/waitlist", h.ListWaitlist)

		api.GET("/stats", h.GetStats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

package routes

import (
	"credimaq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApplications = "/applications"
	PathReview       = "/review"
	PathAdmin        = "/admin"
)

func addCreditRoutes(rg *gin.RouterGroup, applicationHandler *handlers.ApplicationHandler, analystHandler *handlers.AnalystHandler, adminHandler *handlers.AdminHandler) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", applicationHandler.CreateApplication)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PUT("/:id/steps/:step", applicationHandler.SubmitStep)
		applications.POST("/:id/finish", applicationHandler.FinishApplication)
		applications.POST("/:id/nip/resend", applicationHandler.ResendCode)
		applications.POST("/:id/nip/validate", applicationHandler.ValidateCode)
	}

	review := rg.Group(PathReview)
	{
		review.POST("/:id/assign", analystHandler.Assign)
		review.POST("/:id/start", analystHandler.StartAnalysis)
		review.POST("/:id/approve", analystHandler.Approve)
		review.POST("/:id/reject", analystHandler.Reject)
		review.GET("/:id/timeline", analystHandler.Timeline)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/applications/:id/repair", adminHandler.Repair)
	}
}

package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "asset-dashboard/docs" // generated OpenAPI doc
	"asset-dashboard/internal/api/handler"
	"asset-dashboard/pkg/router"
)

// RegisterRoutes wires every dashboard endpoint onto the router.
func RegisterRoutes(r *router.Router) {
	r.GET("/healthz", handler.Healthz)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))

	r.GET("/api/v1/assets", handler.ListAssets)
	r.POST("/api/v1/assets", handler.CreateAsset)
	r.GET("/api/v1/assets/*", handler.GetAsset)
	r.PUT("/api/v1/assets/*", handler.UpdateAsset)
	r.DELETE("/api/v1/assets/*", handler.RetireAsset)

	r.GET("/api/v1/employees", handler.ListEmployees)
	r.GET("/api/v1/employees/*", handler.GetEmployee)

	r.GET("/api/v1/assignments", handler.ListAssignments)
	r.POST("/api/v1/assignments", handler.CreateAssignment)
	// More specific routes first
	r.POST("/api/v1/assignments/*/return", handler.ReturnAssignment)

	r.GET("/api/v1/maintenance", handler.ListMaintenance)
	r.POST("/api/v1/maintenance", handler.CreateMaintenance)

	r.GET("/api/v1/approvals", handler.ListApprovals)
	r.POST("/api/v1/approvals", handler.CreateApproval)
	r.POST("/api/v1/approvals/*/approve", handler.ApproveRequest)
	r.POST("/api/v1/approvals/*/reject", handler.RejectRequest)

	r.POST("/api/v1/sync", handler.TriggerSync)
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/response"
)

// Operation names a protected API action. Every guarded route declares the
// operation it performs and the policy table below decides who may call it.
type Operation string

const (
	OpProfileRead        Operation = "profile:read"
	OpComplaintCreate    Operation = "complaint:create"
	OpComplaintList      Operation = "complaint:list"
	OpComplaintFilter    Operation = "complaint:filter"
	OpComplaintUpdate    Operation = "complaint:update"
	OpLeaveCreate        Operation = "leave:create"
	OpLeaveList          Operation = "leave:list"
	OpLeaveUpdate        Operation = "leave:update"
	OpAnnouncementCreate Operation = "announcement:create"
	OpAnnouncementList   Operation = "announcement:list"
	OpAnnouncementDelete Operation = "announcement:delete"
	OpStatsRead          Operation = "stats:read"
	OpReportExport       Operation = "report:export"
)

// policy maps each operation to the roles allowed to perform it. An
// operation absent from the table is denied outright, so forgetting to
// register a new route fails closed.
var policy = map[Operation][]models.UserRole{
	OpProfileRead:        {models.RoleStudent, models.RoleAdmin},
	OpComplaintCreate:    {models.RoleStudent, models.RoleAdmin},
	OpComplaintList:      {models.RoleStudent, models.RoleAdmin},
	OpComplaintFilter:    {models.RoleStudent, models.RoleAdmin},
	OpComplaintUpdate:    {models.RoleAdmin},
	OpLeaveCreate:        {models.RoleStudent, models.RoleAdmin},
	OpLeaveList:          {models.RoleStudent, models.RoleAdmin},
	OpLeaveUpdate:        {models.RoleAdmin},
	OpAnnouncementCreate: {models.RoleAdmin},
	OpAnnouncementList:   {models.RoleStudent, models.RoleAdmin},
	OpAnnouncementDelete: {models.RoleAdmin},
	OpStatsRead:          {models.RoleAdmin},
	OpReportExport:       {models.RoleAdmin},
}

// Authorize enforces the policy table for the given operation. It expects
// the JWT middleware to have attached claims already.
func Authorize(op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		for _, role := range policy[op] {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "admin access required"))
		c.Abort()
	}
}

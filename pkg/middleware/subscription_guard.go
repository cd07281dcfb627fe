package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopora/internal/models/db_models"
	"shopora/internal/services"
	"shopora/pkg/utils"
)

const ContextAccessStatus = "access_status"

// SubscriptionGuard derives the tenant's access status on every request and
// attaches it to the context. SUPER_ADMIN and CUSTOMER are never gated. A
// tenant with no subscription, or one past its grace period, is rejected;
// write-level decisions (create vs update vs delete) sit in the services.
func SubscriptionGuard(subscriptions services.SubscriptionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == string(db_models.RoleSuperAdmin) || role == string(db_models.RoleCustomer) {
			c.Set(ContextAccessStatus, services.FullAccess())
			c.Next()
			return
		}

		tenantID, ok := TenantID(c)
		if !ok {
			utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
			c.Abort()
			return
		}

		access, err := subscriptions.CheckAccess(c.Request.Context(), tenantID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAccessStatus, access)
		if !access.HasAccess {
			utils.RespondError(c, http.StatusForbidden, access.Message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AccessStatusFrom returns the status the guard attached, when present.
func AccessStatusFrom(c *gin.Context) (services.AccessStatus, bool) {
	v, ok := c.Get(ContextAccessStatus)
	if !ok {
		return services.AccessStatus{}, false
	}
	status, ok := v.(services.AccessStatus)
	return status, ok
}

// This file contains the health check endpoint handler.
//   - GET /healthz — Returns a simple health check response
package handlers

import (
	"net/http"
)

// HealthCheck handles GET /healthz so load balancers and monitoring tools
// can verify the service is alive.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "bmi-calculator",
	}, nil)
}

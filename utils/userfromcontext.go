package utils

import (
	"net/http"

	"github.com/rudraprotapchakraborty/hotel-management-server/globals"
)

// GetEmailFromRequest returns the authenticated caller's email, or ""
// when the request carried no valid token.
func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}

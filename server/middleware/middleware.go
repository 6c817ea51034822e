// Package middleware provides the standard Gin middleware stack for rpckit
// servers: panic recovery, request IDs, CORS, and request logging.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// Stack returns the default middleware chain in the order servers should
// apply it: recovery first, then request-ID, CORS, and request logging.
func Stack(cors *CORSConfig) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		Recovery(),
		RequestID(),
		CORS(cors),
		RequestLogger(),
	}
}

package server

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/rpckit/rpc"
	"github.com/skillsenselab/rpckit/version"
)

// IdentityHeader is the header an authenticating gateway uses to hand the
// pipeline an already-resolved caller identity.
const IdentityHeader = "X-Identity"

// DescriptorsPath serves the introspection listing for mounted registries.
const DescriptorsPath = "/rpc/_descriptors"

// Mount registers an rpc endpoint as a Gin route. The HTTP request is
// projected onto an rpc.Request: the raw body, the full URL path, and the
// gateway-resolved identity from the X-Identity header when present.
// Pipeline errors map to HTTP status codes via their AppError metadata.
func Mount(r gin.IRoutes, method, path string, ep rpc.Invoker) {
	r.Handle(method, path, func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			RespondWithError(c, err)
			return
		}

		req := rpc.Request{
			URL:      c.Request.URL.Path,
			Body:     string(body),
			Identity: c.GetHeader(IdentityHeader),
		}

		encoded, err := ep.Invoke(c.Request.Context(), req)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		RespondOK(c, encoded)
	})
}

// MountRegistry registers every endpoint in the registry under
// POST /rpc/<name>/:identity and serves the descriptor listing at
// DescriptorsPath.
func MountRegistry(r gin.IRoutes, registry *rpc.Registry) {
	for _, name := range registry.Names() {
		ep, _ := registry.Get(name)
		Mount(r, "POST", "/rpc/"+name+"/:identity", ep)
	}

	r.GET(DescriptorsPath, func(c *gin.Context) {
		RespondOKJSON(c, gin.H{
			"version":   version.Short(),
			"endpoints": registry.Descriptors(),
		})
	})
}

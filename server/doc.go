// Package server provides the HTTP edge for rpckit endpoints: a Gin-backed
// server with graceful lifecycle, the standard middleware stack, and adapters
// that mount rpc endpoints as routes.
//
// The pipeline itself is transport-agnostic; this package owns the mapping
// between HTTP requests and rpc.Request values, and between AppError codes
// and HTTP status codes.
//
//	srv := server.New(cfg, log)
//	srv.ApplyMiddleware()
//	server.Mount(srv.GinEngine(), http.MethodPost, "/rpc/echo/:identity", endpoint)
//	server.MountRegistry(srv.GinEngine(), registry)
//	srv.Start(ctx)
package server

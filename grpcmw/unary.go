// Package grpcmw adapts a midware chain to gRPC unary server interceptors.
// The chain runs around each call with the method, request and call context
// carried in the context map; the core library itself stays transport-free.
package grpcmw

import (
	"context"

	"google.golang.org/grpc"

	"github.com/mwkit/midware"
	"github.com/mwkit/midware/keypath"
)

// Context map keys populated for every intercepted call.
const (
	// KeyMethod holds the full gRPC method name, e.g. "/pkg.Service/Call".
	KeyMethod = "grpc.method"
	// KeyRequest holds the request message; middleware may replace it
	// before the terminal call runs.
	KeyRequest = "grpc.request"
	// KeyResponse holds the response message once the terminal call has
	// returned; middleware after phases may replace it.
	KeyResponse = "grpc.response"
	// KeyContext holds the call's context.Context.
	KeyContext = "grpc.context"
)

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that drives
// the given middleware around each unary call. The terminal handler invokes
// the actual gRPC handler with the request found at [KeyRequest] and stores
// its response at [KeyResponse]. Handler and middleware failures propagate
// unchanged to gRPC.
func UnaryServerInterceptor(mws []midware.Middleware, opts ...midware.Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		terminal := func(c midware.Context) (midware.Context, error) {
			callCtx, _ := keypath.Get(c, []string{KeyContext}).(context.Context)
			if callCtx == nil {
				callCtx = ctx
			}
			resp, err := handler(callCtx, keypath.Get(c, []string{KeyRequest}))
			if err != nil {
				return nil, err
			}
			c[KeyResponse] = resp
			return c, nil
		}

		initial := midware.Context{
			KeyMethod:  info.FullMethod,
			KeyRequest: req,
			KeyContext: ctx,
		}

		out, err := midware.Run(initial, terminal, mws, opts...)
		if err != nil {
			return nil, err
		}
		return keypath.Get(out, []string{KeyResponse}), nil
	}
}

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"context"
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/apis"
)

// CallResolver maps a full gRPC method name ("/pkg.Service/Method") to the
// delegation call site it serves. ok=false leaves the call alone.
type CallResolver func(ctx context.Context, method string) (call apis.Call, ok bool)

// SourceResolver resolves every method to a field of one source: the
// method name in lower camel case ("GetUser" becomes "getUser").
func SourceResolver(source, typeName string) CallResolver {
	return func(_ context.Context, method string) (apis.Call, bool) {
		i := strings.LastIndex(method, "/")
		if i < 0 || i == len(method)-1 {
			return apis.Call{}, false
		}
		return apis.Call{
			SourceName: source,
			TypeName:   typeName,
			FieldName:  strcase.ToLowerCamel(method[i+1:]),
		}, true
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that passes
// failed upstream calls through hook.
//
// A failed call is converted with FromStatus, handed to hook as the error
// variant of a result, and the resulting error is converted back with
// ToStatus using m. Errors that are not gRPC statuses, methods the resolver
// does not know, and results the hook turns into a success are returned
// unchanged.
func UnaryClientInterceptor(resolve CallResolver, hook apis.DelegateHook, m apis.Mapper) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		call, ok := resolve(ctx, method)
		if !ok {
			return err
		}
		res := hook(ctx, call, apis.Failure(FromStatus(st)))
		if !res.IsError() {
			return err
		}
		return ToStatus(res.Err, m).Err()
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *errfmt.Error values returned by handlers into gRPC statuses with
// details. Other errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var fe *errfmt.Error
		if !errors.As(err, &fe) {
			// Not ours: return as-is.
			return nil, err
		}
		return nil, ToStatus(fe.Sanitize(), m).Err()
	}
}

// Package api holds the protobuf sources and the code generated from them.
package api

//go:generate protoc -I proto --go_out=gen --go_opt=paths=source_relative --go-grpc_out=gen --go-grpc_opt=paths=source_relative proto/cart/v1/cart.proto

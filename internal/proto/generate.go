// Package proto holds the generated messages and service stubs of the
// garden.v1.Garden gRPC service. Edit garden.proto and regenerate; never
// edit the .pb.go files by hand.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative garden.proto

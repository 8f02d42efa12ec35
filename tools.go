//go:build tools

package tools

// This file tracks CLI tool dependencies used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates the *_mock_test.go files
//   (see the //go:generate directives in each package's service_test.go)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring;
//   deployments use `fritterctl migrate up`

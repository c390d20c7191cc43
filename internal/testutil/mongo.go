//go:build integration

// Package testutil starts the MongoDB instance shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoServer is a running MongoDB container.
type MongoServer struct {
	container testcontainers.Container
	URI       string
}

// shared is set by RunWithMongo for the lifetime of a test binary.
var shared *MongoServer

// StartMongo launches a MongoDB container and resolves its connection string.
func StartMongo(ctx context.Context) (*MongoServer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoServer{container: container, URI: uri}, nil
}

// Stop terminates the container.
func (s *MongoServer) Stop(ctx context.Context) error {
	if s == nil || s.container == nil {
		return nil
	}
	if err := s.container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// RunWithMongo is meant for TestMain: one container serves every test in the
// package and each test isolates itself with DatabaseName.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongo(m))
//	}
func RunWithMongo(m *testing.M) int {
	ctx := context.Background()

	server, err := StartMongo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration setup: %v\n", err)
		return 1
	}
	shared = server

	code := m.Run()

	if err := server.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration teardown: %v\n", err)
	}
	return code
}

// MongoURI returns the connection string of the container started by RunWithMongo.
func MongoURI() string {
	if shared == nil {
		panic("testutil: MongoURI called outside RunWithMongo")
	}
	return shared.URI
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_")

// DatabaseName derives a unique, valid database name from the test name.
func DatabaseName(t testing.TB) string {
	name := dbNameReplacer.Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}

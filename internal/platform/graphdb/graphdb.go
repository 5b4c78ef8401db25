package graphdb

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Open the schedule graph store. The returned driver is the single shared
// handle for all in-flight graph operations; sessions are created per call.
func Open(ctx context.Context, uri, username, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("openGraphDB: create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("openGraphDB: verify neo4j connection: %w", err)
	}

	return driver, nil
}

// Package storage selects the repository backend named by the configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/mindslate/hostel-complaints/internal/core/ports"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/config"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/db/memory"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/db/mongo"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/http/handlers"
)

// Backend is an opened repository pair plus the hooks needed around it.
type Backend struct {
	Users      ports.UserRepository
	Complaints ports.ComplaintRepository
	// Check is nil for backends with nothing to ping.
	Check *handlers.Check
	Close func(ctx context.Context) error
}

// Open connects to the configured backend. Mongo indexes are created before
// returning.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		return &Backend{
			Users:      store.Users(),
			Complaints: store.Complaints(),
			Close:      func(context.Context) error { return nil },
		}, nil

	case config.StorageMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		repos := mongo.NewRepositories(db)
		if err := repos.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Backend{
			Users:      repos.Users,
			Complaints: repos.Complaints,
			Check: &handlers.Check{
				Name: "mongodb",
				Ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
			},
			Close: client.Disconnect,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}

package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDatabase dials Mongo and verifies the connection. The returned
// database handle is owned by the application root and injected into every
// controller; there is deliberately no package-level client or collection
// set.
func ConnectDatabase(cfg *Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(cfg.DatabaseName), nil
}

// Global collection names. Per-branch collections come from the branch
// registry in the reporting package.
const (
	UserDataCollection    = "UserData"
	PromoCodesCollection  = "PromoCodes"
	CashBalanceCollection = "CashBalanceDetails"
)

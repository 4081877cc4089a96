package database

import (
	"context"
	"time"

	"glowdesk/config"
	"glowdesk/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Name is the database holding the gateway's own records. All booking state
// stays in the external backend; only diagnostic data lives here.
const Name = "glowdesk"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects the audit store and fails fast when it is unreachable.
// The fail-soft paths of the reconciliation core depend on having somewhere
// to record the failures they swallow.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("database: failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		utils.GetLogger().Sugar().Fatalf("database: failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	utils.GetLogger().Sugar().Info("database: connected to MongoDB")
}

// Database returns the gateway's own database handle.
func Database() *mongo.Database {
	return MongoClient.Database(Name)
}

package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the Mongo client and verifies the deployment is reachable
// before anything else starts. A dead document store at boot is fatal;
// failures after boot are surfaced per request instead.
func Connect(uri, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to document store:", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Document store unreachable:", err)
	}

	log.Println("Document store connection established")
	return client.Database(dbName)
}

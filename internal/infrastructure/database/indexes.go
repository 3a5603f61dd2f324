package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const (
	UsersCollection         = "users"
	AppointmentsCollection  = "appointments"
	MessagesCollection      = "messages"
	RevokedTokensCollection = "revoked_tokens"
)

// EnsureIndexes creates the indexes the repositories rely on. Email
// uniqueness is enforced here as well as checked before inserts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "role", Value: 1}, {Key: "doctorDepartment", Value: 1}},
				Options: options.Index().SetName("role_department"),
			},
		})
		return err
	})
	g.Go(func() error {
		_, err := db.Collection(AppointmentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "patientId", Value: 1}},
				Options: options.Index().SetName("patientId_index"),
			},
			{
				Keys:    bson.D{{Key: "doctorId", Value: 1}},
				Options: options.Index().SetName("doctorId_index"),
			},
		})
		return err
	})
	g.Go(func() error {
		_, err := db.Collection(RevokedTokensCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "token_hash", Value: 1}},
				Options: options.Index().SetName("token_hash_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "expires_at", Value: 1}},
				Options: options.Index().SetName("expires_at_ttl").SetExpireAfterSeconds(0),
			},
		})
		return err
	})
	return g.Wait()
}

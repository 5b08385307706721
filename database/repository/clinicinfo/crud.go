package clinicinfoRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"clinicflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll returns every clinic info topic.
func (r *mongoClinicInfoRepo) GetAll(ctx context.Context) ([]models.ClinicInfo, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.ClinicInfo
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Upsert inserts or replaces a clinic info topic.
func (r *mongoClinicInfoRepo) Upsert(ctx context.Context, info models.ClinicInfo) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"topic": info.Topic}, info, opts)
	return err
}

// Count returns the number of stored topics.
func (r *mongoClinicInfoRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

// SeedFromFile loads clinic info from a JSON file (topic -> answer) into
// the repository when the collection is empty.
func SeedFromFile(ctx context.Context, repo ClinicInfoRepository, path string) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("clinic info count: %w", err)
	}
	if n > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read clinic info file: %w", err)
	}
	var docs map[string]string
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("parse clinic info file: %w", err)
	}
	for topic, answer := range docs {
		if err := repo.Upsert(ctx, models.ClinicInfo{Topic: topic, Answer: answer}); err != nil {
			return fmt.Errorf("seed clinic info %q: %w", topic, err)
		}
	}
	return nil
}

package clinicinfoRepo

import (
	"context"

	"clinicflow/config"
	"clinicflow/database"
	"clinicflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClinicInfoRepository interface {
	GetAll(ctx context.Context) ([]models.ClinicInfo, error)
	Upsert(ctx context.Context, info models.ClinicInfo) error
	Count(ctx context.Context) (int64, error)
}

type mongoClinicInfoRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicInfoRepo returns a new ClinicInfoRepository instance using MongoDB.
func NewMongoClinicInfoRepo() ClinicInfoRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoClinicInfoRepo{
		coll: db.Collection("clinic_info"),
	}
}

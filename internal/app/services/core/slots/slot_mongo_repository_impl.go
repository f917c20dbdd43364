package slots

import (
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type slotMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
	Now        func() time.Time
}

func NewSlotMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.SlotRepository {
	return &slotMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionSlots),
		Log:        logger,
		Now:        time.Now,
	}
}

func (repo *slotMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("slots_date_unique"),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		repo.Log.Error("slotMongoRepository.EnsureIndexes error creating index",
			zap.Error(err),
		)
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionSlots)
	}
	return nil
}

// FindByDate returns nil without error when no record exists for date.
func (repo *slotMongoRepository) FindByDate(ctx context.Context, date string) (*models.SlotRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotMongoRepository.FindByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var record models.SlotRecord
	err := repo.Collection.FindOne(ctx, bson.M{"date": date}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("slotMongoRepository.FindByDate error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *slotMongoRepository) FindByDates(ctx context.Context, dates []string) (map[string]models.SlotRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotMongoRepository.FindByDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingDatesKey, dates),
	)

	result := make(map[string]models.SlotRecord, len(dates))
	if len(dates) == 0 {
		return result, nil
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{"date": bson.M{"$in": dates}})
	if err != nil {
		repo.Log.Error("slotMongoRepository.FindByDates error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var records []models.SlotRecord
	err = cursor.All(ctx, &records)
	if err != nil {
		repo.Log.Error("slotMongoRepository.FindByDates error iterating documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	for _, record := range records {
		result[record.Date] = record
	}

	repo.Log.Info("slotMongoRepository.FindByDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotRecordCountKey, len(result)),
	)
	return result, nil
}

// Upsert replaces the closed set for date in a single findAndModify, creating the
// record when it does not exist yet.
func (repo *slotMongoRepository) Upsert(ctx context.Context, date string, closedSlots []string) (*models.SlotRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotMongoRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
		zap.Strings(constvars.LoggingClosedSlotsKey, closedSlots),
	)

	if closedSlots == nil {
		closedSlots = []string{}
	}

	now := repo.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"closedSlots": closedSlots,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}

	record, err := repo.findOneAndUpsert(ctx, date, update)
	if err != nil {
		repo.Log.Error("slotMongoRepository.Upsert error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}

	repo.Log.Info("slotMongoRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingClosedSlotCountKey, len(record.ClosedSlots)),
	)
	return record, nil
}

// FindOrCreateDefault returns the record for date, inserting one with no closed
// slots when absent. An existing record is never modified.
func (repo *slotMongoRepository) FindOrCreateDefault(ctx context.Context, date string) (*models.SlotRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("slotMongoRepository.FindOrCreateDefault called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	now := repo.Now().UTC()
	update := bson.M{
		"$setOnInsert": bson.M{
			"closedSlots": []string{},
			"createdAt":   now,
			"updatedAt":   now,
		},
	}

	record, err := repo.findOneAndUpsert(ctx, date, update)
	if err != nil {
		repo.Log.Error("slotMongoRepository.FindOrCreateDefault error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return record, nil
}

// Two concurrent upserts on a missing date may both try to insert; the loser
// sees a duplicate key error and is retried once against the winner's document.
func (repo *slotMongoRepository) findOneAndUpsert(ctx context.Context, date string, update bson.M) (*models.SlotRecord, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.SlotRecord
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"date": date}, update, opts).Decode(&record)
	if mongo.IsDuplicateKeyError(err) {
		err = repo.Collection.FindOneAndUpdate(ctx, bson.M{"date": date}, update, opts).Decode(&record)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

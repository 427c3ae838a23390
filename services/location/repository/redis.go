package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/database"
	"github.com/unirides/unirides/internal/pkg/models"
	nrpkg "github.com/unirides/unirides/internal/pkg/newrelic"
)

// LocationTTL is how long a reported location is kept
const LocationTTL = 24 * time.Hour

// RedisLocationRepo keeps the last reported location per user in a Redis hash
type RedisLocationRepo struct {
	redisClient *database.RedisClient
}

// NewRedisLocationRepo creates a new location repository
func NewRedisLocationRepo(redisClient *database.RedisClient) *RedisLocationRepo {
	return &RedisLocationRepo{redisClient: redisClient}
}

// StoreLocation stores the location under user:location:{id} with a TTL
func (r *RedisLocationRepo) StoreLocation(ctx context.Context, userID string, loc models.Location) error {
	defer nrpkg.RedisSegment(ctx, "HSET").End()

	key := fmt.Sprintf(constants.KeyUserLocation, userID)
	values := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(loc.Accuracy, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HSet(ctx, key, values); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}
	return nil
}

// GetLastLocation reads the stored location of a user
func (r *RedisLocationRepo) GetLastLocation(ctx context.Context, userID string) (*models.Location, error) {
	defer nrpkg.RedisSegment(ctx, "HGETALL").End()

	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyUserLocation, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	loc := &models.Location{Latitude: lat, Longitude: lng}
	if v, ok := values[constants.FieldAccuracy]; ok {
		if loc.Accuracy, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid accuracy: %w", err)
		}
	}
	if v, ok := values[constants.FieldTimestamp]; ok {
		ts, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
		loc.Timestamp = time.Unix(ts, 0).UTC()
	}
	return loc, nil
}

package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

const doctorsKey = "hms:doctors:all"

// DoctorCacheStore keeps the doctor listing in Redis as JSON.
type DoctorCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IDoctorCache = (*DoctorCacheStore)(nil)

func NewDoctorCacheStore(rdb *redis.Client, ttl time.Duration) *DoctorCacheStore {
	return &DoctorCacheStore{rdb: rdb, ttl: ttl}
}

// cachedDoctor mirrors entity.User minus the password, which never reaches the cache.
type cachedDoctor struct {
	ID               string            `json:"id"`
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	NIC              string            `json:"nic"`
	DOB              time.Time         `json:"dob"`
	Gender           entity.Gender     `json:"gender"`
	DoctorDepartment string            `json:"doctorDepartment"`
	DocAvatar        *entity.DocAvatar `json:"docAvatar,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (c *DoctorCacheStore) GetDoctors(ctx context.Context) ([]*entity.User, bool, error) {
	b, err := c.rdb.Get(ctx, doctorsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cached []cachedDoctor
	if err := json.Unmarshal(b, &cached); err != nil {
		return nil, false, nil
	}
	doctors := make([]*entity.User, 0, len(cached))
	for _, d := range cached {
		doctors = append(doctors, &entity.User{
			ID:               d.ID,
			FirstName:        d.FirstName,
			LastName:         d.LastName,
			Email:            d.Email,
			Phone:            d.Phone,
			NIC:              d.NIC,
			DOB:              d.DOB,
			Gender:           d.Gender,
			Role:             entity.UserRoleDoctor,
			DoctorDepartment: d.DoctorDepartment,
			DocAvatar:        d.DocAvatar,
			CreatedAt:        d.CreatedAt,
			UpdatedAt:        d.UpdatedAt,
		})
	}
	return doctors, true, nil
}

func (c *DoctorCacheStore) SetDoctors(ctx context.Context, doctors []*entity.User) error {
	cached := make([]cachedDoctor, 0, len(doctors))
	for _, d := range doctors {
		cached = append(cached, cachedDoctor{
			ID:               d.ID,
			FirstName:        d.FirstName,
			LastName:         d.LastName,
			Email:            d.Email,
			Phone:            d.Phone,
			NIC:              d.NIC,
			DOB:              d.DOB,
			Gender:           d.Gender,
			DoctorDepartment: d.DoctorDepartment,
			DocAvatar:        d.DocAvatar,
			CreatedAt:        d.CreatedAt,
			UpdatedAt:        d.UpdatedAt,
		})
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, doctorsKey, data, c.ttl).Err()
}

func (c *DoctorCacheStore) InvalidateDoctors(ctx context.Context) error {
	return c.rdb.Del(ctx, doctorsKey).Err()
}

package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

const userNotFound = "user not found"

// ---------- DTO layer ------------------
type docAvatarDTO struct {
	PublicID string `bson:"public_id"`
	URL      string `bson:"url"`
}

type userDTO struct {
	ID               string        `bson:"_id"`
	FirstName        string        `bson:"firstName"`
	LastName         string        `bson:"lastName"`
	Email            string        `bson:"email"`
	Phone            string        `bson:"phone"`
	NIC              string        `bson:"nic"`
	DOB              time.Time     `bson:"dob"`
	Gender           string        `bson:"gender"`
	Password         string        `bson:"password,omitempty"`
	Role             string        `bson:"role"`
	DoctorDepartment string        `bson:"doctorDepartment,omitempty"`
	DocAvatar        *docAvatarDTO `bson:"docAvatar,omitempty"`
	CreatedAt        time.Time     `bson:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt"`
}

func (u *userDTO) ToEntity() *entity.User {
	user := &entity.User{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		NIC:              u.NIC,
		DOB:              u.DOB,
		Gender:           entity.Gender(u.Gender),
		Password:         u.Password,
		Role:             entity.UserRole(u.Role),
		DoctorDepartment: u.DoctorDepartment,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.DocAvatar != nil {
		user.DocAvatar = &entity.DocAvatar{PublicID: u.DocAvatar.PublicID, URL: u.DocAvatar.URL}
	}
	return user
}

func FromUserEntityToDTO(u *entity.User) *userDTO {
	dto := &userDTO{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		NIC:              u.NIC,
		DOB:              u.DOB,
		Gender:           string(u.Gender),
		Password:         u.Password,
		Role:             string(u.Role),
		DoctorDepartment: u.DoctorDepartment,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.DocAvatar != nil {
		dto.DocAvatar = &docAvatarDTO{PublicID: u.DocAvatar.PublicID, URL: u.DocAvatar.URL}
	}
	return dto
}

// ---------------------------------------

// withoutPassword is the default read projection.
var withoutPassword = bson.M{"password": 0}

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, FromUserEntityToDTO(user))
	return translate(err, userNotFound)
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(withoutPassword))
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne().SetProjection(withoutPassword))
}

func (r *MongoUserRepository) GetUserWithPassword(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne())
}

func (r *MongoUserRepository) GetUserWithPasswordByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne())
}

func (r *MongoUserRepository) FindUsers(ctx context.Context, filter contract.UserFilter) ([]*entity.User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}
	if filter.FirstName != "" {
		query["firstName"] = filter.FirstName
	}
	if filter.LastName != "" {
		query["lastName"] = filter.LastName
	}
	if filter.Department != "" {
		query["doctorDepartment"] = filter.Department
	}

	opts := options.Find().
		SetProjection(withoutPassword).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, translate(err, userNotFound)
	}
	defer cursor.Close(ctx)

	var dtos []userDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, translate(err, userNotFound)
	}
	users := make([]*entity.User, 0, len(dtos))
	for i := range dtos {
		users = append(users, dtos[i].ToEntity())
	}
	return users, nil
}

// UpdateUser replaces the stored document with user, password hash included.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, FromUserEntityToDTO(user))
	if err != nil {
		return translate(err, userNotFound)
	}
	if result.MatchedCount == 0 {
		return entity.NewNotFoundError(userNotFound)
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*entity.User, error) {
	var dto userDTO
	if err := r.collection.FindOne(ctx, filter, opts).Decode(&dto); err != nil {
		return nil, translate(err, userNotFound)
	}
	return dto.ToEntity(), nil
}

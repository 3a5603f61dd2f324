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

const appointmentNotFound = "appointment not found"

// ---------- DTO layer ------------------
type doctorRefDTO struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

type appointmentDTO struct {
	ID              string       `bson:"_id"`
	FirstName       string       `bson:"firstName"`
	LastName        string       `bson:"lastName"`
	Email           string       `bson:"email"`
	Phone           string       `bson:"phone"`
	NIC             string       `bson:"nic"`
	DOB             time.Time    `bson:"dob"`
	Gender          string       `bson:"gender"`
	AppointmentDate string       `bson:"appointment_date"`
	Department      string       `bson:"department"`
	Doctor          doctorRefDTO `bson:"doctor"`
	HasVisited      bool         `bson:"hasVisited"`
	Address         string       `bson:"address"`
	DoctorID        string       `bson:"doctorId"`
	PatientID       string       `bson:"patientId"`
	Status          string       `bson:"status"`
	CreatedAt       time.Time    `bson:"createdAt"`
}

func (a *appointmentDTO) ToEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		NIC:             a.NIC,
		DOB:             a.DOB,
		Gender:          entity.Gender(a.Gender),
		AppointmentDate: a.AppointmentDate,
		Department:      a.Department,
		Doctor:          entity.DoctorRef{FirstName: a.Doctor.FirstName, LastName: a.Doctor.LastName},
		HasVisited:      a.HasVisited,
		Address:         a.Address,
		DoctorID:        a.DoctorID,
		PatientID:       a.PatientID,
		Status:          entity.AppointmentStatus(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

func FromAppointmentEntityToDTO(a *entity.Appointment) *appointmentDTO {
	return &appointmentDTO{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		NIC:             a.NIC,
		DOB:             a.DOB,
		Gender:          string(a.Gender),
		AppointmentDate: a.AppointmentDate,
		Department:      a.Department,
		Doctor:          doctorRefDTO{FirstName: a.Doctor.FirstName, LastName: a.Doctor.LastName},
		HasVisited:      a.HasVisited,
		Address:         a.Address,
		DoctorID:        a.DoctorID,
		PatientID:       a.PatientID,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

// ---------------------------------------

type AppointmentRepository struct {
	collection *mongo.Collection
}

var _ contract.IAppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(collection *mongo.Collection) *AppointmentRepository {
	return &AppointmentRepository{collection: collection}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	_, err := r.collection.InsertOne(ctx, FromAppointmentEntityToDTO(appointment))
	return translate(err, appointmentNotFound)
}

func (r *AppointmentRepository) GetAppointmentByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var dto appointmentDTO
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dto); err != nil {
		return nil, translate(err, appointmentNotFound)
	}
	return dto.ToEntity(), nil
}

func (r *AppointmentRepository) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, translate(err, appointmentNotFound)
	}
	defer cursor.Close(ctx)

	var dtos []appointmentDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, translate(err, appointmentNotFound)
	}
	appointments := make([]*entity.Appointment, 0, len(dtos))
	for i := range dtos {
		appointments = append(appointments, dtos[i].ToEntity())
	}
	return appointments, nil
}

// UpdateAppointment sets the provided fields and returns the updated document.
func (r *AppointmentRepository) UpdateAppointment(ctx context.Context, id string, update contract.AppointmentUpdate) (*entity.Appointment, error) {
	set := bson.M{}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.HasVisited != nil {
		set["hasVisited"] = *update.HasVisited
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var dto appointmentDTO
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&dto)
	if err != nil {
		return nil, translate(err, appointmentNotFound)
	}
	return dto.ToEntity(), nil
}

func (r *AppointmentRepository) DeleteAppointment(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, appointmentNotFound)
	}
	if result.DeletedCount == 0 {
		return entity.NewNotFoundError(appointmentNotFound)
	}
	return nil
}

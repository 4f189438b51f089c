package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeeCollection = "employees"

type employeeRepositoryImpl struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		coll: db.Collection(employeeCollection),
	}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	result, err := r.coll.InsertOne(ctx, newEmployee)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return employee.Employee{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (employee.Employee, error) {
	var emp employee.Employee
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("find employee by id: %w", err)
	}
	return emp, nil
}

// FindByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

// FindByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.coll.FindOne(ctx, filter).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := []employee.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if result.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

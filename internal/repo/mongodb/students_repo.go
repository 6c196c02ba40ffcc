package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/campushub/internal/domain/student"
	"github.com/geocoder89/campushub/internal/observability"
	"github.com/geocoder89/campushub/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type studentDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	FirstName          string             `bson:"firstName"`
	LastName           string             `bson:"lastName"`
	Email              string             `bson:"email"`
	Course             string             `bson:"course"`
	Year               int                `bson:"year"`
	RegistrationNumber string             `bson:"registrationNumber"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

func (d studentDoc) toDomain() student.Student {
	return student.Student{
		ID:                 d.ID.Hex(),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Email:              d.Email,
		Course:             d.Course,
		Year:               d.Year,
		RegistrationNumber: d.RegistrationNumber,
		CreatedAt:          d.CreatedAt,
	}
}

func studentDocFrom(req student.UpsertStudentRequest) studentDoc {
	return studentDoc{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Course:             req.Course,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
	}
}

type StudentsRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewStudentsRepo(database *mongo.Database, prom *observability.Prom) *StudentsRepo {
	return &StudentsRepo{
		col:  database.Collection("students"),
		prom: prom,
	}
}

func (r *StudentsRepo) List(ctx context.Context) ([]student.Student, error) {
	out := []student.Student{}

	err := r.prom.ObserveDB("students.list", func() error {
		cur, err := r.col.Find(ctx, bson.M{})

		if err != nil {
			return err
		}

		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc studentDoc

			if err := cur.Decode(&doc); err != nil {
				return err
			}

			out = append(out, doc.toDomain())
		}

		return cur.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *StudentsRepo) GetByID(ctx context.Context, id string) (student.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return student.Student{}, repo.ErrInvalidID
	}

	var doc studentDoc

	err = r.prom.ObserveDB("students.get", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return student.Student{}, repo.ErrNotFound
		}

		return student.Student{}, err
	}

	return doc.toDomain(), nil
}

func (r *StudentsRepo) Create(ctx context.Context, req student.UpsertStudentRequest) (student.Student, error) {
	doc := studentDocFrom(req)
	doc.CreatedAt = time.Now().UTC()

	err := r.prom.ObserveDB("students.create", func() error {
		res, err := r.col.InsertOne(ctx, doc)

		if err != nil {
			return err
		}

		doc.ID = res.InsertedID.(primitive.ObjectID)
		return nil
	})

	if err != nil {
		return student.Student{}, err
	}

	return doc.toDomain(), nil
}

// Replace swaps the whole document, keeping the original createdAt.
func (r *StudentsRepo) Replace(ctx context.Context, id string, req student.UpsertStudentRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return repo.ErrInvalidID
	}

	return r.prom.ObserveDB("students.replace", func() error {
		update := bson.M{"$set": bson.M{
			"firstName":          req.FirstName,
			"lastName":           req.LastName,
			"email":              req.Email,
			"course":             req.Course,
			"year":               req.Year,
			"registrationNumber": req.RegistrationNumber,
		}}

		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)

		if err != nil {
			return err
		}

		if res.MatchedCount == 0 {
			return repo.ErrNotFound
		}

		return nil
	})
}

func (r *StudentsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return repo.ErrInvalidID
	}

	return r.prom.ObserveDB("students.delete", func() error {
		res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})

		if err != nil {
			return err
		}

		if res.DeletedCount == 0 {
			return repo.ErrNotFound
		}

		return nil
	})
}

package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/campushub/internal/domain/course"
	"github.com/geocoder89/campushub/internal/observability"
	"github.com/geocoder89/campushub/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type courseDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Code       string             `bson:"code"`
	Instructor string             `bson:"instructor"`
	Credits    int                `bson:"credits"`
	Semester   string             `bson:"semester"`
	Department string             `bson:"department"`
	Year       int                `bson:"year"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d courseDoc) toDomain() course.Course {
	return course.Course{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Code:       d.Code,
		Instructor: d.Instructor,
		Credits:    d.Credits,
		Semester:   d.Semester,
		Department: d.Department,
		Year:       d.Year,
		CreatedAt:  d.CreatedAt,
	}
}

type CoursesRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewCoursesRepo(database *mongo.Database, prom *observability.Prom) *CoursesRepo {
	return &CoursesRepo{
		col:  database.Collection("courses"),
		prom: prom,
	}
}

func (r *CoursesRepo) List(ctx context.Context) ([]course.Course, error) {
	out := []course.Course{}

	err := r.prom.ObserveDB("courses.list", func() error {
		cur, err := r.col.Find(ctx, bson.M{})

		if err != nil {
			return err
		}

		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc courseDoc

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

func (r *CoursesRepo) GetByID(ctx context.Context, id string) (course.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return course.Course{}, repo.ErrInvalidID
	}

	var doc courseDoc

	err = r.prom.ObserveDB("courses.get", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return course.Course{}, repo.ErrNotFound
		}

		return course.Course{}, err
	}

	return doc.toDomain(), nil
}

func (r *CoursesRepo) Create(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error) {
	doc := courseDoc{
		Name:       req.Name,
		Code:       req.Code,
		Instructor: req.Instructor,
		Credits:    req.Credits,
		Semester:   req.Semester,
		Department: req.Department,
		Year:       req.Year,
		CreatedAt:  time.Now().UTC(),
	}

	err := r.prom.ObserveDB("courses.create", func() error {
		res, err := r.col.InsertOne(ctx, doc)

		if err != nil {
			return err
		}

		doc.ID = res.InsertedID.(primitive.ObjectID)
		return nil
	})

	if err != nil {
		return course.Course{}, err
	}

	return doc.toDomain(), nil
}

// Replace swaps the whole document, keeping the original createdAt.
func (r *CoursesRepo) Replace(ctx context.Context, id string, req course.UpsertCourseRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return repo.ErrInvalidID
	}

	return r.prom.ObserveDB("courses.replace", func() error {
		update := bson.M{"$set": bson.M{
			"name":       req.Name,
			"code":       req.Code,
			"instructor": req.Instructor,
			"credits":    req.Credits,
			"semester":   req.Semester,
			"department": req.Department,
			"year":       req.Year,
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

func (r *CoursesRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return repo.ErrInvalidID
	}

	return r.prom.ObserveDB("courses.delete", func() error {
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

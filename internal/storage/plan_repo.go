package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlanRepo struct {
	coll *mongo.Collection
}

func NewPlanRepo(coll *mongo.Collection) *PlanRepo {
	return &PlanRepo{coll: coll}
}

func (r *PlanRepo) Insert(ctx context.Context, p *Plan) (*Plan, error) {
	p.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("plan insert: %w", err)
	}
	return p, nil
}

func (r *PlanRepo) FindByID(ctx context.Context, id string) (*Plan, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("plan find: %w", err)
	}
	return &p, nil
}

func (r *PlanRepo) FindAll(ctx context.Context) ([]Plan, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("plan list: %w", err)
	}
	defer cur.Close(ctx)

	plans := []Plan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("plan list decode: %w", err)
	}
	return plans, nil
}

func (r *PlanRepo) UpdateByID(ctx context.Context, id string, patch PlanPatch) (*Plan, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p Plan
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch.setFields()}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("plan update: %w", err)
	}
	return &p, nil
}

func (r *PlanRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("plan delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

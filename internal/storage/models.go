package storage

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanCollection is the single document collection this service writes to.
const PlanCollection = "plan"

var (
	ErrNotFound  = errors.New("plan not found")
	ErrInvalidID = errors.New("invalid id format")
)

type Task struct {
	TaskID      string  `bson:"taskId" json:"taskId"`
	Label       string  `bson:"label" json:"label"`
	IsDone      bool    `bson:"isDone" json:"isDone"`
	DueDate     *string `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CompletedAt *string `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

type Plan struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Type              string             `bson:"type" json:"type"`
	LinkedIdeaID      *string            `bson:"linkedIdeaId,omitempty" json:"linkedIdeaId,omitempty"`
	LinkedPathID      *string            `bson:"linkedPathId,omitempty" json:"linkedPathId,omitempty"`
	RobuxGoal         *int               `bson:"robuxGoal,omitempty" json:"robuxGoal,omitempty"`
	Notes             string             `bson:"notes" json:"notes"`
	Tasks             []Task             `bson:"tasks" json:"tasks"`
	ProgressPercent   int                `bson:"progressPercent" json:"progressPercent"`
	StreakCount       int                `bson:"streakCount" json:"streakCount"`
	LastCompletedDate *string            `bson:"lastCompletedDate,omitempty" json:"lastCompletedDate,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PlanPatch names the fields a partial update may overwrite.
// Nil fields are left untouched.
type PlanPatch struct {
	Name              *string
	Type              *string
	LinkedIdeaID      *string
	LinkedPathID      *string
	RobuxGoal         *int
	Notes             *string
	Tasks             *[]Task
	ProgressPercent   *int
	StreakCount       *int
	LastCompletedDate *string
	UpdatedAt         *time.Time
}

func (p PlanPatch) setFields() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.LinkedIdeaID != nil {
		set["linkedIdeaId"] = *p.LinkedIdeaID
	}
	if p.LinkedPathID != nil {
		set["linkedPathId"] = *p.LinkedPathID
	}
	if p.RobuxGoal != nil {
		set["robuxGoal"] = *p.RobuxGoal
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.Tasks != nil {
		set["tasks"] = *p.Tasks
	}
	if p.ProgressPercent != nil {
		set["progressPercent"] = *p.ProgressPercent
	}
	if p.StreakCount != nil {
		set["streakCount"] = *p.StreakCount
	}
	if p.LastCompletedDate != nil {
		set["lastCompletedDate"] = *p.LastCompletedDate
	}
	if p.UpdatedAt != nil {
		set["updatedAt"] = *p.UpdatedAt
	}
	return set
}

// ParseID checks the opaque 24-hex id shape before any store access, so a
// malformed id fails as ErrInvalidID rather than a spurious not-found.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

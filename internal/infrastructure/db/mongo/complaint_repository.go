package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

const collectionComplaints = "complaints"

// ComplaintRepository implements ports.ComplaintRepository using MongoDB.
type ComplaintRepository struct {
	col *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{col: db.Collection(collectionComplaints)}
}

type mongoComplaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StudentID   primitive.ObjectID `bson:"student"`
	RoomNumber  string             `bson:"room_number"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`

	// Populated by the $lookup stage in List only.
	Owner *mongoStudentRef `bson:"owner,omitempty"`
}

type mongoStudentRef struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// Create inserts a new complaint document and sets c.ID.
func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	studentID, err := primitive.ObjectIDFromHex(c.StudentID)
	if err != nil {
		return fmt.Errorf("insert complaint: invalid student id %q: %w", c.StudentID, err)
	}

	doc := mongoComplaint{
		ID:          primitive.NewObjectID(),
		StudentID:   studentID,
		RoomNumber:  c.RoomNumber,
		Category:    string(c.Category),
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}

	c.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a complaint without its owner projection.
func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoComplaint
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateStatus sets status and updated_at in a single findOneAndUpdate. No
// other field is touched.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus, at time.Time) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": at.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoComplaint
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("update complaint status: %w", err)
	}
	return doc.toDomain(), nil
}

// List runs the filtered, sorted, paginated aggregation and a matching count.
// Owners are joined from the users collection with only name and email kept.
func (r *ComplaintRepository) List(ctx context.Context, f ports.ComplaintFilter) ([]*domain.Complaint, int64, error) {
	match, err := buildMatch(f)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("count complaints: %w", err)
	}
	if total == 0 || f.Skip < 0 || f.Skip >= total {
		return []*domain.Complaint{}, total, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		// ObjectIDs grow with insertion, so _id ascending breaks created_at ties
		// in insertion order.
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: f.Skip}},
		{{Key: "$limit", Value: f.Limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "student"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "owner.password_hash", Value: 0},
			{Key: "owner.role", Value: 0},
			{Key: "owner.room_number", Value: 0},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoComplaint
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode complaints: %w", err)
	}

	items := make([]*domain.Complaint, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}
	return items, total, nil
}

// EnsureIndexes creates the indexes backing the list queries.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_number", Value: 1}}},
		{Keys: bson.D{{Key: "student", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// buildMatch translates the resolved filter into a $match document. Search
// terms are matched literally and case-insensitively.
func buildMatch(f ports.ComplaintFilter) (bson.M, error) {
	match := bson.M{}
	if f.StudentID != "" {
		oid, err := primitive.ObjectIDFromHex(f.StudentID)
		if err != nil {
			return nil, fmt.Errorf("list complaints: invalid student id %q: %w", f.StudentID, err)
		}
		match["student"] = oid
	}
	if f.Status != "" {
		match["status"] = string(f.Status)
	}
	if f.Category != "" {
		match["category"] = string(f.Category)
	}
	if f.RoomSearch != "" {
		match["room_number"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.RoomSearch), Options: "i"}
	}
	if f.DescriptionSearch != "" {
		match["description"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.DescriptionSearch), Options: "i"}
	}
	return match, nil
}

func (d mongoComplaint) toDomain() *domain.Complaint {
	c := &domain.Complaint{
		ID:          d.ID.Hex(),
		StudentID:   d.StudentID.Hex(),
		RoomNumber:  d.RoomNumber,
		Category:    domain.Category(d.Category),
		Description: d.Description,
		Status:      domain.ComplaintStatus(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.Owner != nil {
		c.Student = &domain.StudentRef{
			ID:    d.Owner.ID.Hex(),
			Name:  d.Owner.Name,
			Email: d.Owner.Email,
		}
	}
	return c
}

package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

func TestBuildMatch_Empty(t *testing.T) {
	match, err := buildMatch(ports.ComplaintFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(match) != 0 {
		t.Fatalf("expected an empty match, got %v", match)
	}
}

func TestBuildMatch_StudentScope(t *testing.T) {
	oid := primitive.NewObjectID()
	match, err := buildMatch(ports.ComplaintFilter{
		StudentID:         oid.Hex(),
		Status:            domain.StatusResolved,
		Category:          domain.CategoryWater,
		DescriptionSearch: "leak (bad)",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match["student"] != oid {
		t.Fatalf("student = %v, want %v", match["student"], oid)
	}
	if match["status"] != "resolved" || match["category"] != "water" {
		t.Fatalf("unexpected match: %v", match)
	}
	re, ok := match["description"].(primitive.Regex)
	if !ok || re.Pattern != `leak \(bad\)` || re.Options != "i" {
		t.Fatalf("description regex = %#v", match["description"])
	}
	if _, ok := match["room_number"]; ok {
		t.Fatalf("student scope must not search rooms")
	}
}

func TestBuildMatch_CaretakerRoomSearch(t *testing.T) {
	match, err := buildMatch(ports.ComplaintFilter{RoomSearch: "A-1."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := match["student"]; ok {
		t.Fatalf("caretaker match must not restrict by student")
	}
	re, ok := match["room_number"].(primitive.Regex)
	if !ok || re.Pattern != `A-1\.` {
		t.Fatalf("room regex = %#v", match["room_number"])
	}
}

func TestBuildMatch_InvalidStudentID(t *testing.T) {
	if _, err := buildMatch(ports.ComplaintFilter{StudentID: "not-hex"}); err == nil {
		t.Fatalf("expected an error for a malformed student id")
	}
}

func TestMongoComplaint_ToDomain(t *testing.T) {
	owner := primitive.NewObjectID()
	doc := mongoComplaint{
		ID:          primitive.NewObjectID(),
		StudentID:   owner,
		RoomNumber:  "A-101",
		Category:    "water",
		Description: "Tap is leaking all night",
		Status:      "open",
		Owner:       &mongoStudentRef{ID: owner, Name: "Alice", Email: "alice@example.com"},
	}

	c := doc.toDomain()
	if c.ID != doc.ID.Hex() || c.StudentID != owner.Hex() {
		t.Fatalf("ids not converted: %+v", c)
	}
	if c.Student == nil || c.Student.Name != "Alice" {
		t.Fatalf("owner not projected: %+v", c.Student)
	}

	doc.Owner = nil
	if doc.toDomain().Student != nil {
		t.Fatalf("expected no student without the lookup")
	}
}

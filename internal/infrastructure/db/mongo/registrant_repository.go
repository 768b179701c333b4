package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// The registrant collection predates this service; field names and the
// collection name are shared with the public signup application.
const registrantCollection = "users"

type RegistrantRepository struct {
	col *mongo.Collection
}

func NewRegistrantRepository(db *mongo.Database) *RegistrantRepository {
	return &RegistrantRepository{col: db.Collection(registrantCollection)}
}

// registrantDoc is the stored shape. Password and OTP fields written by
// the signup application are intentionally absent so they can never reach
// an API response.
type registrantDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	Email                 string             `bson:"email"`
	Verified              bool               `bson:"verified"`
	FullName              string             `bson:"fullName"`
	PhoneNumber           string             `bson:"phoneNumber"`
	CollegeName           string             `bson:"collegeName"`
	Department            string             `bson:"department"`
	Paid                  bool               `bson:"paid"`
	TransactionNumber     string             `bson:"transactionNumber"`
	TransactionScreenshot string             `bson:"transactionScreenshot"`
	SelectedDepartment    string             `bson:"selectedDepartment"`
}

func (d registrantDoc) toDomain() domain.Registrant {
	return domain.Registrant{
		ID:                    d.ID.Hex(),
		Email:                 d.Email,
		Verified:              d.Verified,
		FullName:              d.FullName,
		PhoneNumber:           d.PhoneNumber,
		CollegeName:           d.CollegeName,
		Department:            d.Department,
		Paid:                  d.Paid,
		TransactionNumber:     d.TransactionNumber,
		TransactionScreenshot: d.TransactionScreenshot,
		SelectedDepartment:    d.SelectedDepartment,
	}
}

// scopeFilter translates a domain.Scope into a Mongo filter. ScopeNone has
// no filter representation: callers short-circuit before querying.
func scopeFilter(scope domain.Scope) bson.M {
	if scope.Kind == domain.ScopeDepartment {
		return bson.M{"selectedDepartment": scope.Department}
	}
	return bson.M{}
}

// List returns every registrant matching scope.
func (r *RegistrantRepository) List(ctx context.Context, scope domain.Scope) ([]domain.Registrant, error) {
	if scope.Kind == domain.ScopeNone {
		return []domain.Registrant{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, scopeFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("list registrants: %w", err)
	}
	defer cur.Close(ctx)

	registrants := []domain.Registrant{}
	for cur.Next(ctx) {
		var doc registrantDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode registrant: %w", err)
		}
		registrants = append(registrants, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list registrants: %w", err)
	}
	return registrants, nil
}

// FindByID retrieves a single registrant by hex object id.
func (r *RegistrantRepository) FindByID(ctx context.Context, id string) (*domain.Registrant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRegistrantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc registrantDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegistrantNotFound
		}
		return nil, fmt.Errorf("find registrant: %w", err)
	}

	reg := doc.toDomain()
	return &reg, nil
}

// UpdatePayment sets the paid flag. The transaction number is cleared
// whenever paid is false so a stale reference can never read as valid.
func (r *RegistrantRepository) UpdatePayment(ctx context.Context, id string, paid bool, transactionNumber string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRegistrantNotFound
	}

	if !paid {
		transactionNumber = ""
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"paid":              paid,
		"transactionNumber": transactionNumber,
	}})
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRegistrantNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the admin queries depend on.
func (r *RegistrantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "selectedDepartment", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

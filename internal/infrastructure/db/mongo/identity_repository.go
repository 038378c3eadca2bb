package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
	"github.com/homestay/booking-gate/internal/infrastructure/db/memory"
)

const identityCollection = "identities"

// IdentityRepository is the Mongo-backed identity directory.
type IdentityRepository struct {
	coll *mongo.Collection
}

var _ ports.IdentityDirectory = (*IdentityRepository)(nil)

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{coll: db.Collection(identityCollection)}
}

type mongoIdentity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID   string             `bson:"external_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Role         string             `bson:"role"`
	Avatar       string             `bson:"avatar,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// FindByEmail looks up an identity by exact email.
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (domain.Identity, domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoIdentity
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Identity{}, domain.Credential{}, domain.ErrIdentityNotFound
		}
		return domain.Identity{}, domain.Credential{}, fmt.Errorf("find identity: %w", err)
	}

	identity, cred, err := fromDocument(doc)
	if err != nil {
		return domain.Identity{}, domain.Credential{}, fmt.Errorf("find identity %s: %w", email, err)
	}
	return identity, cred, nil
}

// Seed upserts the known identities by email, hashing plain passwords.
func (r *IdentityRepository) Seed(ctx context.Context, entries []memory.KnownIdentity) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	for _, e := range entries {
		doc, err := toDocument(e, now)
		if err != nil {
			return err
		}

		set := bson.M{
			"external_id": doc.ExternalID,
			"name":        doc.Name,
			"role":        doc.Role,
			"avatar":      doc.Avatar,
			"updated_at":  doc.UpdatedAt,
		}
		update := bson.M{"$set": set}
		if doc.PasswordHash != "" {
			set["password_hash"] = doc.PasswordHash
		} else {
			update["$unset"] = bson.M{"password_hash": ""}
		}

		_, err = r.coll.UpdateOne(ctx, bson.M{"email": doc.Email}, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed identity %s: %w", doc.Email, err)
		}
	}
	return nil
}

// EnsureIndexes enforces one identity per email.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toDocument(e memory.KnownIdentity, now time.Time) (mongoIdentity, error) {
	doc := mongoIdentity{
		ExternalID: e.Identity.ID,
		Name:       e.Identity.Name,
		Email:      e.Identity.Email,
		Role:       string(e.Identity.Role),
		Avatar:     e.Identity.Avatar,
		UpdatedAt:  now,
	}
	if e.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*e.Password), bcrypt.DefaultCost)
		if err != nil {
			return mongoIdentity{}, fmt.Errorf("hash password for %s: %w", e.Identity.Email, err)
		}
		doc.PasswordHash = string(hash)
	}
	return doc, nil
}

func fromDocument(doc mongoIdentity) (domain.Identity, domain.Credential, error) {
	role := domain.Role(doc.Role)
	if !role.Valid() {
		return domain.Identity{}, domain.Credential{}, fmt.Errorf("unknown role %q", doc.Role)
	}

	id := doc.ExternalID
	if id == "" {
		id = doc.ID.Hex()
	}

	cred := domain.NoCredential()
	if doc.PasswordHash != "" {
		cred = domain.HashedCredential(doc.PasswordHash)
	}

	return domain.Identity{
		ID:     id,
		Name:   doc.Name,
		Email:  doc.Email,
		Role:   role,
		Avatar: doc.Avatar,
	}, cred, nil
}

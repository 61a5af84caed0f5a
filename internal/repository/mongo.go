package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cheickthiam/portfolio/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// findOne decodes the document with the given _id into dst.
func findOne(ctx context.Context, coll *mongo.Collection, id string, dst any, notFound error) error {
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return err
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, sort bson.D) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	out := []*T{}
	err = cursor.All(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func replaceOne(ctx context.Context, coll *mongo.Collection, id string, doc any, notFound error) error {
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if result.MatchedCount == 0 {
		return notFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return notFound
	}
	return nil
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

type adminStore struct {
	coll *mongo.Collection
}

func (s *adminStore) Create(ctx context.Context, admin *model.Admin) error {
	stamp(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	_, err := s.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *adminStore) ByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := findOne(ctx, s.coll, id, &admin, ErrAdminNotFound)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *adminStore) ByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *adminStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func (s *adminStore) Update(ctx context.Context, admin *model.Admin) error {
	admin.UpdatedAt = now()
	return replaceOne(ctx, s.coll, admin.ID, admin, ErrAdminNotFound)
}

type experienceStore struct {
	coll *mongo.Collection
}

func (s *experienceStore) Create(ctx context.Context, e *model.Experience) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	_, err := s.coll.InsertOne(ctx, e)
	return err
}

func (s *experienceStore) ByID(ctx context.Context, id string) (*model.Experience, error) {
	var e model.Experience
	err := findOne(ctx, s.coll, id, &e, ErrExperienceNotFound)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *experienceStore) List(ctx context.Context, visibleOnly bool) ([]*model.Experience, error) {
	filter := bson.M{}
	if visibleOnly {
		filter["isVisible"] = true
	}
	return findAll[model.Experience](ctx, s.coll, filter, bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
}

func (s *experienceStore) Update(ctx context.Context, e *model.Experience) error {
	e.UpdatedAt = now()
	return replaceOne(ctx, s.coll, e.ID, e, ErrExperienceNotFound)
}

func (s *experienceStore) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.coll, id, ErrExperienceNotFound)
}

func (s *experienceStore) DeleteAll(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{})
	return err
}

type projectStore struct {
	coll *mongo.Collection
}

func (s *projectStore) Create(ctx context.Context, p *model.Project) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	_, err := s.coll.InsertOne(ctx, p)
	return err
}

func (s *projectStore) ByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := findOne(ctx, s.coll, id, &p, ErrProjectNotFound)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectStore) List(ctx context.Context) ([]*model.Project, error) {
	return findAll[model.Project](ctx, s.coll, bson.M{}, newestFirst)
}

func (s *projectStore) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = now()
	return replaceOne(ctx, s.coll, p.ID, p, ErrProjectNotFound)
}

func (s *projectStore) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.coll, id, ErrProjectNotFound)
}

func (s *projectStore) DeleteAll(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{})
	return err
}

type certificationStore struct {
	coll *mongo.Collection
}

func (s *certificationStore) Create(ctx context.Context, c *model.Certification) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	_, err := s.coll.InsertOne(ctx, c)
	return err
}

func (s *certificationStore) ByID(ctx context.Context, id string) (*model.Certification, error) {
	var c model.Certification
	err := findOne(ctx, s.coll, id, &c, ErrCertificationNotFound)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *certificationStore) List(ctx context.Context) ([]*model.Certification, error) {
	return findAll[model.Certification](ctx, s.coll, bson.M{}, newestFirst)
}

func (s *certificationStore) Update(ctx context.Context, c *model.Certification) error {
	c.UpdatedAt = now()
	return replaceOne(ctx, s.coll, c.ID, c, ErrCertificationNotFound)
}

func (s *certificationStore) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.coll, id, ErrCertificationNotFound)
}

type contactStore struct {
	coll *mongo.Collection
}

func (s *contactStore) Create(ctx context.Context, c *model.Contact) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	_, err := s.coll.InsertOne(ctx, c)
	return err
}

func (s *contactStore) ByID(ctx context.Context, id string) (*model.Contact, error) {
	var c model.Contact
	err := findOne(ctx, s.coll, id, &c, ErrContactNotFound)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *contactStore) List(ctx context.Context) ([]*model.Contact, error) {
	return findAll[model.Contact](ctx, s.coll, bson.M{}, newestFirst)
}

func (s *contactStore) SetRead(ctx context.Context, id string, read bool) (*model.Contact, error) {
	var c model.Contact
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": read, "updatedAt": now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *contactStore) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.coll, id, ErrContactNotFound)
}

type profileStore struct {
	coll *mongo.Collection
}

var singletonFilter = bson.M{"singleton": 1}

func (s *profileStore) Get(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	err := s.coll.FindOne(ctx, singletonFilter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate upserts on the unique singleton key; the filter value is
// written into the inserted document.
func (s *profileStore) GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error) {
	p := *defaults
	p.ID = ""
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	var stored model.Profile
	err := s.coll.FindOneAndUpdate(ctx,
		singletonFilter,
		bson.M{"$setOnInsert": &p},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if mongo.IsDuplicateKeyError(err) {
		return s.Get(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *profileStore) Update(ctx context.Context, p *model.Profile) error {
	p.UpdatedAt = now()
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":        p.Name,
		"title":       p.Title,
		"bio":         p.Bio,
		"email":       p.Email,
		"phone":       p.Phone,
		"location":    p.Location,
		"typingTexts": p.TypingTexts,
		"socialLinks": p.SocialLinks,
		"updatedAt":   p.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *profileStore) SetAsset(ctx context.Context, asset model.ProfileAsset, url string) (*model.Profile, error) {
	switch asset {
	case model.ProfileImage, model.ProfileCV:
	default:
		return nil, fmt.Errorf("unknown profile asset %q", asset)
	}

	var p model.Profile
	err := s.coll.FindOneAndUpdate(ctx,
		singletonFilter,
		bson.M{"$set": bson.M{string(asset): url, "updatedAt": now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

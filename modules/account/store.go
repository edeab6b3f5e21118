package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	pkgmongo "github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/mongo"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/totp"
)

const accountsCollection = "accounts"

// MongoStorage implements auth.Storage over a MongoDB collection. Second-
// factor secrets are encrypted with AES-256-GCM before they touch the
// database and decrypted transparently on read.
type MongoStorage struct {
	col    *mongo.Collection
	secKey []byte
}

// NewMongoStorage creates the storage. encryptionKey must be a 32-byte
// AES-256 key; use totp.DecodeEncryptionKey to load it from config.
func NewMongoStorage(db *mongo.Database, encryptionKey []byte) (*MongoStorage, error) {
	if len(encryptionKey) != totp.KeySize {
		return nil, errors.New("encryption key must be 32 bytes")
	}
	return &MongoStorage{
		col:    db.Collection(accountsCollection),
		secKey: encryptionKey,
	}, nil
}

// EnsureIndexes creates the unique indexes backing email uniqueness. Must
// run once at startup before the storage serves traffic.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "emails.address", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "reset_token.digest", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "email_verification.digest", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	return err
}

type emailEntryDoc struct {
	Address  string `bson:"address"`
	Verified bool   `bson:"verified"`
}

type tokenSlotDoc struct {
	Digest    string    `bson:"digest"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type emailVerificationDoc struct {
	Digest    string    `bson:"digest"`
	Address   string    `bson:"address"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type secondFactorDoc struct {
	Enabled bool   `bson:"enabled"`
	Secret  string `bson:"secret,omitempty"` // AES-256-GCM ciphertext, base64
}

type accountDoc struct {
	ID                string                `bson:"_id"`
	Name              string                `bson:"name"`
	Email             string                `bson:"email"`
	Emails            []emailEntryDoc       `bson:"emails"`
	PasswordHash      []byte                `bson:"password_hash"`
	PasswordHistory   [][]byte              `bson:"password_history"`
	PasswordChangedAt time.Time             `bson:"password_changed_at"`
	IsBlocked         bool                  `bson:"is_blocked"`
	IsAdmin           bool                  `bson:"is_admin"`
	SecondFactor      secondFactorDoc       `bson:"second_factor"`
	ResetToken        *tokenSlotDoc         `bson:"reset_token,omitempty"`
	EmailVerification *emailVerificationDoc `bson:"email_verification,omitempty"`
	CreatedAt         time.Time             `bson:"created_at"`
	UpdatedAt         time.Time             `bson:"updated_at"`
}

func (s *MongoStorage) toDoc(a *auth.Account) (*accountDoc, error) {
	doc := &accountDoc{
		ID:                a.ID.String(),
		Name:              a.Name,
		Email:             a.Email,
		PasswordHash:      a.PasswordHash,
		PasswordHistory:   a.PasswordHistory,
		PasswordChangedAt: a.PasswordChangedAt,
		IsBlocked:         a.IsBlocked,
		IsAdmin:           a.IsAdmin,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	for _, e := range a.Emails {
		doc.Emails = append(doc.Emails, emailEntryDoc{Address: e.Address, Verified: e.Verified})
	}
	if a.SecondFactor.Secret != "" {
		encrypted, err := totp.EncryptSecret(a.SecondFactor.Secret, s.secKey)
		if err != nil {
			return nil, err
		}
		doc.SecondFactor = secondFactorDoc{Enabled: a.SecondFactor.Enabled, Secret: encrypted}
	}
	if a.ResetToken != nil {
		doc.ResetToken = &tokenSlotDoc{Digest: a.ResetToken.Digest, ExpiresAt: a.ResetToken.ExpiresAt}
	}
	if a.EmailVerification != nil {
		doc.EmailVerification = &emailVerificationDoc{
			Digest:    a.EmailVerification.Digest,
			Address:   a.EmailVerification.Address,
			ExpiresAt: a.EmailVerification.ExpiresAt,
		}
	}
	return doc, nil
}

func (s *MongoStorage) fromDoc(doc *accountDoc) (*auth.Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	a := &auth.Account{
		ID:                id,
		Name:              doc.Name,
		Email:             doc.Email,
		PasswordHash:      doc.PasswordHash,
		PasswordHistory:   doc.PasswordHistory,
		PasswordChangedAt: doc.PasswordChangedAt,
		IsBlocked:         doc.IsBlocked,
		IsAdmin:           doc.IsAdmin,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
	for _, e := range doc.Emails {
		a.Emails = append(a.Emails, auth.EmailEntry{Address: e.Address, Verified: e.Verified})
	}
	if doc.SecondFactor.Secret != "" {
		secret, err := totp.DecryptSecret(doc.SecondFactor.Secret, s.secKey)
		if err != nil {
			return nil, err
		}
		a.SecondFactor = auth.SecondFactor{Enabled: doc.SecondFactor.Enabled, Secret: secret}
	}
	if doc.ResetToken != nil {
		a.ResetToken = &auth.TokenSlot{Digest: doc.ResetToken.Digest, ExpiresAt: doc.ResetToken.ExpiresAt}
	}
	if doc.EmailVerification != nil {
		a.EmailVerification = &auth.EmailVerification{
			Digest:    doc.EmailVerification.Digest,
			Address:   doc.EmailVerification.Address,
			ExpiresAt: doc.EmailVerification.ExpiresAt,
		}
	}
	return a, nil
}

func (s *MongoStorage) findOne(ctx context.Context, filter any) (*auth.Account, error) {
	var doc accountDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if pkgmongo.IsNotFoundError(err) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return s.fromDoc(&doc)
}

func (s *MongoStorage) CreateAccount(ctx context.Context, account *auth.Account) error {
	doc, err := s.toDoc(account)
	if err != nil {
		return err
	}

	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		if pkgmongo.IsDuplicateKeyError(err) {
			return auth.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (s *MongoStorage) GetAccountByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *MongoStorage) GetAccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	return s.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"emails": bson.M{"$elemMatch": bson.M{"address": email, "verified": true}}},
	}})
}

func (s *MongoStorage) GetAccountByPrimaryEmail(ctx context.Context, email string) (*auth.Account, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStorage) ListAccounts(ctx context.Context) ([]auth.Account, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []auth.Account
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		a, err := s.fromDoc(&doc)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, cursor.Err()
}

func (s *MongoStorage) updateOne(ctx context.Context, id uuid.UUID, update any) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		if pkgmongo.IsDuplicateKeyError(err) {
			return auth.ErrEmailAlreadyExists
		}
		return err
	}
	if res.MatchedCount == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}

func (s *MongoStorage) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"name":       name,
		"updated_at": time.Now().UTC(),
	}})
}

// UpdatePassword performs the whole rotation in a single document update so
// a concurrent login never observes a new hash with a stale history.
func (s *MongoStorage) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte, changedAt time.Time, historyLimit int) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"password_hash":       hash,
			"password_changed_at": changedAt,
			"updated_at":          time.Now().UTC(),
		},
		"$push": bson.M{
			"password_history": bson.M{
				"$each":     bson.A{hash},
				"$position": 0,
				"$slice":    historyLimit,
			},
		},
		"$unset": bson.M{"reset_token": ""},
	})
}

func (s *MongoStorage) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"is_blocked": blocked,
		"updated_at": time.Now().UTC(),
	}})
}

func (s *MongoStorage) SetResetToken(ctx context.Context, id uuid.UUID, slot *auth.TokenSlot) error {
	if slot == nil {
		return s.updateOne(ctx, id, bson.M{"$unset": bson.M{"reset_token": ""}})
	}
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"reset_token": tokenSlotDoc{Digest: slot.Digest, ExpiresAt: slot.ExpiresAt},
		"updated_at":  time.Now().UTC(),
	}})
}

func (s *MongoStorage) GetAccountByResetToken(ctx context.Context, digest string) (*auth.Account, error) {
	return s.findOne(ctx, bson.M{"reset_token.digest": digest})
}

func (s *MongoStorage) SetSecondFactor(ctx context.Context, id uuid.UUID, sf auth.SecondFactor) error {
	doc := secondFactorDoc{Enabled: sf.Enabled}
	if sf.Secret != "" {
		encrypted, err := totp.EncryptSecret(sf.Secret, s.secKey)
		if err != nil {
			return err
		}
		doc.Secret = encrypted
	}
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"second_factor": doc,
		"updated_at":    time.Now().UTC(),
	}})
}

func (s *MongoStorage) ClearSecondFactor(ctx context.Context, id uuid.UUID) error {
	return s.SetSecondFactor(ctx, id, auth.SecondFactor{})
}

func (s *MongoStorage) AddEmail(ctx context.Context, id uuid.UUID, entry auth.EmailEntry) error {
	return s.updateOne(ctx, id, bson.M{
		"$push": bson.M{"emails": emailEntryDoc{Address: entry.Address, Verified: entry.Verified}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (s *MongoStorage) RemoveEmail(ctx context.Context, id uuid.UUID, address string) error {
	return s.updateOne(ctx, id, bson.M{
		"$pull": bson.M{"emails": bson.M{"address": address}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (s *MongoStorage) SetEmailVerification(ctx context.Context, id uuid.UUID, v *auth.EmailVerification) error {
	if v == nil {
		return s.updateOne(ctx, id, bson.M{"$unset": bson.M{"email_verification": ""}})
	}
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"email_verification": emailVerificationDoc{
			Digest:    v.Digest,
			Address:   v.Address,
			ExpiresAt: v.ExpiresAt,
		},
		"updated_at": time.Now().UTC(),
	}})
}

func (s *MongoStorage) GetAccountByEmailVerification(ctx context.Context, digest string) (*auth.Account, error) {
	return s.findOne(ctx, bson.M{"email_verification.digest": digest})
}

func (s *MongoStorage) MarkEmailVerified(ctx context.Context, id uuid.UUID, address string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id.String(), "emails.address": address},
		bson.M{"$set": bson.M{
			"emails.$.verified": true,
			"updated_at":        time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return auth.ErrEmailNotFound
	}
	return nil
}

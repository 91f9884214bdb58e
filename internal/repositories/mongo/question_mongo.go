package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/datatypes"
)

const questionsCollection = "questions"

// questionDocument is the stored shape of a question. Content keeps the
// variant payload as a native sub-document so it stays queryable.
type questionDocument struct {
	ID        string                  `bson:"_id"`
	Text      string                  `bson:"text"`
	Category  models.QuestionCategory `bson:"category"`
	Type      models.QuestionType     `bson:"type"`
	Content   bson.Raw                `bson:"content,omitempty"`
	CreatedAt time.Time               `bson:"created_at"`
	UpdatedAt time.Time               `bson:"updated_at"`
}

type questionMongo struct {
	collection *mongo.Collection
}

func NewQuestionMongo(db *mongo.Database) repositories.QuestionRepository {
	return &questionMongo{
		collection: db.Collection(questionsCollection),
	}
}

func (r *questionMongo) Create(ctx context.Context, question *models.Question) error {
	now := time.Now().UTC()
	if question.CreatedAt.IsZero() {
		question.CreatedAt = now
	}
	question.UpdatedAt = now

	doc, err := toDocument(question)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return createError(question.ID, err)
	}
	return nil
}

func createError(id string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return repositories.DuplicateError("question", id)
	}
	return fmt.Errorf("failed to create question: %w", err)
}

func (r *questionMongo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var doc questionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.NotFoundError("question", id)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return fromDocument(&doc)
}

func (r *questionMongo) GetByCategory(ctx context.Context, category models.QuestionCategory) ([]*models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []questionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	questions := make([]*models.Question, 0, len(docs))
	for i := range docs {
		q, err := fromDocument(&docs[i])
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func toDocument(q *models.Question) (*questionDocument, error) {
	doc := &questionDocument{
		ID:        q.ID,
		Text:      q.Text,
		Category:  q.Category,
		Type:      q.Type,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if len(q.Content) > 0 {
		var content bson.Raw
		if err := bson.UnmarshalExtJSON(q.Content, false, &content); err != nil {
			return nil, fmt.Errorf("question %s has invalid content: %w", q.ID, err)
		}
		doc.Content = content
	}
	return doc, nil
}

func fromDocument(doc *questionDocument) (*models.Question, error) {
	q := &models.Question{
		ID:        doc.ID,
		Text:      doc.Text,
		Category:  doc.Category,
		Type:      doc.Type,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if len(doc.Content) > 0 {
		content, err := bson.MarshalExtJSON(doc.Content, false, false)
		if err != nil {
			return nil, fmt.Errorf("question %s has unreadable content: %w", doc.ID, err)
		}
		q.Content = datatypes.JSON(content)
	}
	return q, nil
}

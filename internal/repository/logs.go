package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// logEntryDocument is the stored shape of a log entry.
type logEntryDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	UserID     string                 `bson:"user_id,omitempty"`
	UserEmail  string                 `bson:"user_email,omitempty"`
	ActionType string                 `bson:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

func toLogDocument(e *model.LogEntry) logEntryDocument {
	return logEntryDocument{
		ID:         e.ID,
		Timestamp:  e.Timestamp,
		Level:      e.Level,
		Message:    e.Message,
		RequestID:  e.RequestID,
		Method:     e.Method,
		Path:       e.Path,
		StatusCode: e.StatusCode,
		Duration:   e.Duration,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		Error:      e.Error,
		UserID:     e.UserID,
		UserEmail:  e.UserEmail,
		ActionType: e.ActionType,
		Fields:     e.Fields,
	}
}

func (d logEntryDocument) toModel() model.LogEntry {
	return model.LogEntry{
		ID:         d.ID,
		Timestamp:  d.Timestamp,
		Level:      d.Level,
		Message:    d.Message,
		RequestID:  d.RequestID,
		Method:     d.Method,
		Path:       d.Path,
		StatusCode: d.StatusCode,
		Duration:   d.Duration,
		IP:         d.IP,
		UserAgent:  d.UserAgent,
		Error:      d.Error,
		UserID:     d.UserID,
		UserEmail:  d.UserEmail,
		ActionType: d.ActionType,
		Fields:     d.Fields,
	}
}

// LogsRepository persists request and audit log entries in MongoDB.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// InsertLog inserts a single log entry.
func (r *LogsRepository) InsertLog(ctx context.Context, entry *model.LogEntry) error {
	doc := toLogDocument(entry)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func logFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = bson.M{"$regex": opts.Path, "$options": "i"}
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// QueryLogs returns matching log entries, newest first, plus the total
// count of matches.
func (r *LogsRepository) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	filter := logFilter(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []logEntryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = doc.toModel()
	}
	return entries, total, nil
}

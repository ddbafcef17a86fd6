package model

// Document is a schema-less record as stored in and returned from a collection.
type Document map[string]any

// InsertResult mirrors the store acknowledgement for a single insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult mirrors the store acknowledgement for a single update.
// UpsertedID is null unless the update created a document.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult mirrors the store acknowledgement for a single delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CountResponse is the body of GET /api/v1/jobsdataCount.
type CountResponse struct {
	Count int64 `json:"count"`
}

// SuccessResponse is the body returned by the token endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

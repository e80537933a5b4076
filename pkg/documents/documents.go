// Package documents appends schema-less records to named collections.
package documents

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Collection is an append-only set of JSON documents.
type Collection interface {
	Add(ctx context.Context, doc any) (string, error)
}

// SQLCollection keeps documents in the sqlite documents table.
type SQLCollection struct {
	db   *sql.DB
	name string
}

func NewSQLCollection(db *sql.DB, name string) *SQLCollection {
	return &SQLCollection{db: db, name: name}
}

func (c *SQLCollection) Add(ctx context.Context, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		"INSERT INTO documents (id, collection, body, created_ts) VALUES (?, ?, ?, ?)",
		id,
		c.name,
		string(body),
		time.Now().Unix(),
	); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return id, nil
}

// Count returns how many documents the collection holds.
func (c *SQLCollection) Count(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents WHERE collection = ?", c.name).Scan(&n)
	return n, err
}

// ObjectCollection keeps each document as a JSON object under
// <collection>/<id>.json in a minio bucket.
type ObjectCollection struct {
	client *minio.Client
	bucket string
	name   string
}

func NewObjectCollection(client *minio.Client, bucket, name string) *ObjectCollection {
	return &ObjectCollection{client: client, bucket: bucket, name: name}
}

func (c *ObjectCollection) Add(ctx context.Context, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	if _, err := c.client.PutObject(
		ctx,
		c.bucket,
		fmt.Sprintf("%s/%s.json", c.name, id),
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"},
	); err != nil {
		return "", err
	}

	return id, nil
}

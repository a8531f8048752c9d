// Package archive writes serialized records to the cold-storage bucket that
// holds user-data backups. Every record is archived as one JSON object under
// an optional per-request folder; writes are idempotent overwrites, so a
// re-run of the activity produces the same objects.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client the writer needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Destination identifies where one request's backup objects go.
type Destination struct {
	Bucket string
	// Folder groups all objects of one request. Empty means bucket root.
	Folder string
}

// ObjectKey returns the full object key for name. The folder prefix is
// omitted when unset.
func (d Destination) ObjectKey(name string) string {
	if d.Folder == "" {
		return name
	}
	return d.Folder + "/" + name
}

// Writer archives records into cold storage.
type Writer struct {
	client ObjectPutter
}

func NewWriter(client ObjectPutter) *Writer {
	return &Writer{client: client}
}

// Put serializes payload to JSON and writes it as a single object. Either
// the whole object becomes visible or nothing does; there is no partial
// write readers can observe.
func (w *Writer) Put(ctx context.Context, dest Destination, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	_, err = w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(dest.Bucket),
		Key:         aws.String(dest.ObjectKey(name)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", dest.ObjectKey(name), err)
	}

	return nil
}

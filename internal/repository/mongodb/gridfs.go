package mongodb

import (
	"context"
	"io"
	"path"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

const uploadChunkSize = 64 * 1024

// GridFSBlobStore keeps binary assets in a GridFS bucket next to the
// document collections. Public URLs point back at this service's file
// route rather than a third-party CDN.
type GridFSBlobStore struct {
	bucket  *gridfs.Bucket
	urlBase string
}

func NewGridFSBlobStore(db *mongo.Database, urlBase string) (*GridFSBlobStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("assets"))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "opening blob bucket failed", err)
	}
	return &GridFSBlobStore{bucket: bucket, urlBase: urlBase}, nil
}

// Upload streams r into the bucket under key, emitting a progress event per
// chunk and exactly one terminal event before closing the channel. The
// consumer owns pacing: the channel is unbuffered so progress is delivered
// in order, never dropped.
func (s *GridFSBlobStore) Upload(ctx context.Context, key string, r io.Reader, size int64) <-chan repository.UploadEvent {
	events := make(chan repository.UploadEvent)

	go func() {
		defer close(events)

		stream, err := s.bucket.OpenUploadStream(key)
		if err != nil {
			events <- repository.UploadEvent{Err: common.NewError(common.CodeUpload, "opening upload stream failed", err), Done: true}
			return
		}

		buf := make([]byte, uploadChunkSize)
		var written int64
		for {
			if err := ctx.Err(); err != nil {
				_ = stream.Abort()
				events <- repository.UploadEvent{Err: common.NewError(common.CodeUpload, "upload cancelled", err), Done: true}
				return
			}
			n, readErr := r.Read(buf)
			if n > 0 {
				if _, err := stream.Write(buf[:n]); err != nil {
					_ = stream.Abort()
					events <- repository.UploadEvent{Err: common.NewError(common.CodeUpload, "writing blob chunk failed", err), Done: true}
					return
				}
				written += int64(n)
				if size > 0 {
					events <- repository.UploadEvent{Percent: float64(written) / float64(size) * 100}
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				_ = stream.Abort()
				events <- repository.UploadEvent{Err: common.NewError(common.CodeUpload, "reading upload body failed", readErr), Done: true}
				return
			}
		}

		if err := stream.Close(); err != nil {
			events <- repository.UploadEvent{Err: common.NewError(common.CodeUpload, "finalizing blob failed", err), Done: true}
			return
		}
		events <- repository.UploadEvent{Percent: 100, URL: s.PublicURL(key), Done: true}
	}()

	return events
}

func (s *GridFSBlobStore) PublicURL(key string) string {
	return path.Join(s.urlBase, key)
}

func (s *GridFSBlobStore) Download(ctx context.Context, key string, w io.Writer) error {
	if _, err := s.bucket.DownloadToStreamByName(key, w); err != nil {
		if err == gridfs.ErrFileNotFound {
			return common.NewError(common.CodeNotFound, "blob not found", err)
		}
		return common.NewError(common.CodeRemoteRead, "downloading blob failed", err)
	}
	return nil
}

func (s *GridFSBlobStore) Delete(ctx context.Context, key string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": key})
	if err != nil {
		return common.NewError(common.CodeRemoteRead, "locating blob failed", err)
	}
	defer cursor.Close(ctx)

	var file struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if !cursor.Next(ctx) {
		return common.NewError(common.CodeNotFound, "blob not found", nil)
	}
	if err := cursor.Decode(&file); err != nil {
		return common.NewError(common.CodeSchemaMismatch, "decoding blob metadata failed", err)
	}
	if err := s.bucket.Delete(file.ID); err != nil {
		return common.NewError(common.CodeRemoteWrite, "deleting blob failed", err)
	}
	return nil
}

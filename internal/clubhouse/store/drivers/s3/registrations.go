package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type registrationsRepo struct {
	s *Store
}

func (r *registrationsRepo) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.s.bucket),
		Key:    aws.String(r.s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("s3: head %q: %w", key, err)
	}
	return true, nil
}

func (r *registrationsRepo) Get(ctx context.Context, key string) (domain.Registration, error) {
	return r.get(ctx, r.s.objectKey(key))
}

func (r *registrationsRepo) get(ctx context.Context, objectKey string) (domain.Registration, error) {
	out, err := r.s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		if isNotFound(err) {
			return domain.Registration{}, store.ErrNotFound
		}
		return domain.Registration{}, fmt.Errorf("s3: get %q: %w", objectKey, err)
	}
	defer out.Body.Close()

	var rec domain.Registration
	if err := json.NewDecoder(out.Body).Decode(&rec); err != nil {
		return domain.Registration{}, fmt.Errorf("s3: decode %q: %w", objectKey, err)
	}
	return rec, nil
}

func (r *registrationsRepo) Put(ctx context.Context, key string, rec domain.Registration) error {
	in, err := r.putInput(key, rec)
	if err != nil {
		return err
	}
	if _, err := r.s.api.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3: put %q: %w", key, err)
	}
	return nil
}

func (r *registrationsRepo) PutIfAbsent(ctx context.Context, key string, rec domain.Registration) error {
	in, err := r.putInput(key, rec)
	if err != nil {
		return err
	}
	in.IfNoneMatch = aws.String("*")

	if _, err := r.s.api.PutObject(ctx, in); err != nil {
		if isConflict(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("s3: insert %q: %w", key, err)
	}
	return nil
}

// GetAll lists the prefix and fetches each object. Entries come back in
// lexical key order. Objects deleted between the listing and the fetch are
// skipped.
func (r *registrationsRepo) GetAll(ctx context.Context) ([]store.Entry, error) {
	p := s3.NewListObjectsV2Paginator(r.s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.s.bucket),
		Prefix: aws.String(r.s.prefix),
	})

	var out []store.Entry
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3: list: %w", err)
		}
		for _, obj := range page.Contents {
			objectKey := aws.ToString(obj.Key)
			rec, err := r.get(ctx, objectKey)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, store.Entry{Key: r.s.storeKey(objectKey), Record: rec})
		}
	}
	return out, nil
}

func (r *registrationsRepo) putInput(key string, rec domain.Registration) (*s3.PutObjectInput, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("s3: encode %q: %w", key, err)
	}
	return &s3.PutObjectInput{
		Bucket:      aws.String(r.s.bucket),
		Key:         aws.String(r.s.objectKey(key)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}, nil
}

package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Store uploads rental pictures to an S3-compatible bucket and returns the
// public object URL. It is selected with uploads.driver "s3".
type S3Store struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string

	client *s3.S3
}

func (s *S3Store) s3Client() *s3.S3 {
	if s.client == nil {
		sess := session.Must(session.NewSession(&aws.Config{
			Region:   aws.String(s.Region),
			Endpoint: aws.String(s.Endpoint),
			Credentials: credentials.NewStaticCredentials(
				s.AccessKey, s.SecretKey, "",
			),
		}))
		s.client = s3.New(sess)
	}
	return s.client
}

func (s *S3Store) Store(file io.Reader, size int64, originalName string) (string, error) {
	if size == 0 {
		return "", ErrEmptyFile
	}

	body, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(body) == 0 {
		return "", ErrEmptyFile
	}

	key := fmt.Sprintf("rentals/%s_%s", uuid.NewString(), originalName)

	_, err = s.s3Client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.Endpoint, s.Bucket, key), nil
}

package avatar

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

type uploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// S3Store keeps doctor avatars in an S3 bucket.
type S3Store struct {
	uploader   uploader
	bucket     string
	publicBase string
}

var _ contract.IAvatarStorage = (*S3Store)(nil)

func NewS3Store(region, bucket, publicBase string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return &S3Store{
		uploader:   s3manager.NewUploader(sess),
		bucket:     bucket,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader) (*entity.DocAvatar, error) {
	mtype, content, err := sniff(body)
	if err != nil {
		return nil, err
	}

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return nil, entity.NewConnectionError("avatar upload failed", err)
	}

	url := out.Location
	if s.publicBase != "" {
		url = s.publicBase + "/" + key
	}
	return &entity.DocAvatar{PublicID: key, URL: url}, nil
}

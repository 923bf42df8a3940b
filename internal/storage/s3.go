package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/brsaude/patient-intake/internal/patients"
	"github.com/brsaude/patient-intake/pkg/logging"
)

const (
	// DefaultRecordKey is the fixed object key holding the record set.
	DefaultRecordKey = "patients.json"
	// DefaultCSVKey is the sibling object kept current with the CSV
	// rendering of the set on every save.
	DefaultCSVKey = "patients.csv"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps the whole record set in a single JSON object.
type S3Store struct {
	client S3API
	bucket string
	key    string
	csvKey string
	logger *logging.Logger
}

// NewS3Store creates an S3-backed repository over the given bucket.
func NewS3Store(client S3API, bucket string, logger *logging.Logger) *S3Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &S3Store{
		client: client,
		bucket: bucket,
		key:    DefaultRecordKey,
		csvKey: DefaultCSVKey,
		logger: logger,
	}
}

// Load fetches and decodes the record set. A missing object or a
// corrupt body loads as an empty set; transport failures surface as a
// ConfigError so the caller can distinguish them from bad submissions.
func (s *S3Store) Load(ctx context.Context) ([]patients.Patient, error) {
	if s.bucket == "" {
		return nil, s.configError(nil)
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			return []patients.Patient{}, nil
		}
		return nil, s.configError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, s.configError(err)
	}

	var set []patients.Patient
	if err := json.Unmarshal(data, &set); err != nil {
		s.logger.Warn("corrupt patient store, starting empty",
			"bucket", s.bucket,
			"key", s.key,
			"error", err,
		)
		return []patients.Patient{}, nil
	}
	if set == nil {
		set = []patients.Patient{}
	}
	return set, nil
}

// Save writes the full record set and refreshes the CSV object beside
// it so the export blob never goes stale.
func (s *S3Store) Save(ctx context.Context, set []patients.Patient) error {
	if s.bucket == "" {
		return s.configError(nil)
	}

	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return s.configError(err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.csvKey),
		Body:        strings.NewReader(patients.ToCSV(set)),
		ContentType: aws.String("text/csv; charset=utf-8"),
	})
	if err != nil {
		return s.configError(err)
	}
	return nil
}

func (s *S3Store) configError(err error) *ConfigError {
	return &ConfigError{
		Backend:     "s3",
		Remediation: "check STORAGE_S3_BUCKET, AWS credentials and region, then redeploy",
		Err:         err,
	}
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "NoSuchKey") ||
		strings.Contains(msg, "NotFound") ||
		strings.Contains(msg, "404")
}

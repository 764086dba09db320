package services

import (
	"bytes"
	ctx "context"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/shared"
)

// ExportService writes a JSON snapshot of a user's tracking data to
// object storage and hands back a presigned download link.
type ExportService struct {
	context.DefaultService

	client   *minio.Client
	postgres *PostgresService

	endpoint  string
	accessKey string
	secretKey string
	useSSL    bool
	bucket    string
	urlTTL    time.Duration
}

const EXPORT_SVC = "export_svc"

func (svc ExportService) Id() string {
	return EXPORT_SVC
}

func (svc *ExportService) Configure(ctx *context.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")
	if svc.endpoint == "" {
		svc.endpoint = "localhost:9000"
	}
	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"
	svc.bucket = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucket == "" {
		svc.bucket = "focusflow-exports"
	}
	svc.urlTTL = time.Hour

	return svc.DefaultService.Configure(ctx)
}

func (svc *ExportService) Start() error {
	svc.postgres = svc.Service(POSTGRES_SVC).(*PostgresService)

	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create object storage client: %w", err)
	}
	svc.client = client

	return svc.ensureBucket()
}

func (svc *ExportService) ensureBucket() error {
	c := ctx.Background()

	exists, err := svc.client.BucketExists(c, svc.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := svc.client.MakeBucket(c, svc.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", svc.bucket, err)
	}

	log.WithField("bucket", svc.bucket).Info("Created export bucket")
	return nil
}

type exportSnapshot struct {
	UserID      string               `json:"user_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Habits      []model.Habit        `json:"habits"`
	Entries     []model.HabitEntry   `json:"entries"`
	Skills      []model.Skill        `json:"skills"`
	Sessions    []model.SkillSession `json:"sessions"`
}

// CreateExport snapshots everything the user has tracked, uploads it and
// returns a time-limited download URL.
func (svc *ExportService) CreateExport(userID string) (*dto.ExportResponse, error) {
	habits, err := svc.postgres.GetHabitsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load habits")
	}
	entries, err := svc.postgres.GetEntriesByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load entries")
	}
	skills, err := svc.postgres.GetSkillsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load skills")
	}
	sessions, err := svc.postgres.GetSessionsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load sessions")
	}

	now := time.Now().UTC()
	snapshot := exportSnapshot{
		UserID:      userID,
		GeneratedAt: now,
		Habits:      habits,
		Entries:     entries,
		Skills:      skills,
		Sessions:    sessions,
	}

	data, err := shared.MarshalJSON(snapshot)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode snapshot")
	}

	objectName := fmt.Sprintf("%s/export-%s.json", userID, now.Format("20060102-150405"))

	c := ctx.Background()
	_, err = svc.client.PutObject(c, svc.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload snapshot")
	}

	url, err := svc.client.PresignedGetObject(c, svc.bucket, objectName, svc.urlTTL, nil)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to sign download URL")
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"object":  objectName,
		"bytes":   len(data),
	}).Info("Export created")

	return &dto.ExportResponse{
		ObjectName:  objectName,
		DownloadURL: url.String(),
		ExpiresIn:   int64(svc.urlTTL.Seconds()),
		SizeBytes:   len(data),
	}, nil
}

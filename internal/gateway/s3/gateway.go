package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	retrierconfig "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/retrier"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "proof-blob-store"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// ProofGateway складывает подтверждающие фото доставки в S3.
// Объекты иммутабельны, ключ детерминирован по заказу и номеру снимка.
type ProofGateway struct {
	client  client
	bucket  string
	retrier retrier
}

func New(client client, bucket string) *ProofGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &ProofGateway{
		client:  client,
		bucket:  bucket,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// NewClient — клиент S3 из дефолтной цепочки credentials.
func NewClient(ctx context.Context, region string) (*awss3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return awss3.NewFromConfig(cfg), nil
}

// UploadProofImages загружает снимки по одному и возвращает их URI.
// Ошибка на любом снимке прерывает всю партию: частично загруженные
// объекты остаются в бакете, но в заказ их URI не попадут.
func (g *ProofGateway) UploadProofImages(ctx context.Context, orderID string, images [][]byte) ([]string, error) {
	uris := make([]string, 0, len(images))
	uploadedAt := time.Now().UTC().Unix()

	for i, image := range images {
		key := fmt.Sprintf("proof/%s/%d-%d.jpg", orderID, uploadedAt, i)

		err := g.executeWithMetrics(ctx, "PutObject", func(ctx context.Context) error {
			_, err := g.client.PutObject(ctx, &awss3.PutObjectInput{
				Bucket: aws.String(g.bucket),
				Key:    aws.String(key),
				Body:   bytes.NewReader(image),
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("gateway blob, put proof image %d for order %s: %w", i, orderID, err)
		}

		uris = append(uris, fmt.Sprintf("s3://%s/%s", g.bucket, key))
	}

	return uris, nil
}

func (g *ProofGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

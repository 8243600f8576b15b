package qdrant

import (
	"context"
	"fmt"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/whiskerwonders/whiskerbase/internal/logging"
)

// GRPCClient implements the Client interface using Qdrant's official Go client.
type GRPCClient struct {
	client *qdrant.Client
	config *ClientConfig
	logger *logging.Logger
}

// ClientConfig configures the Qdrant gRPC client.
type ClientConfig struct {
	// Host is the Qdrant server hostname or IP address.
	// Default: "localhost"
	Host string `koanf:"host"`

	// Port is the Qdrant gRPC port (NOT the HTTP REST port).
	// Default: 6334
	Port int `koanf:"port"`

	// UseTLS enables TLS encryption for the gRPC connection.
	UseTLS bool `koanf:"use_tls"`

	// APIKey is the optional API key for authentication.
	APIKey string `koanf:"api_key"`

	// DialTimeout is the timeout for establishing the connection.
	// Default: 5 seconds
	DialTimeout time.Duration `koanf:"dial_timeout"`

	// RequestTimeout bounds individual requests.
	// Default: 30 seconds
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RetryAttempts is the number of retries for transient failures.
	// Default: 3
	RetryAttempts int `koanf:"retry_attempts"`
}

// DefaultClientConfig returns sensible defaults for local development.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Host:           "localhost",
		Port:           6334,
		DialTimeout:    5 * time.Second,
		RequestTimeout: 30 * time.Second,
		RetryAttempts:  3,
	}
}

// ApplyDefaults sets default values for unset fields.
func (c *ClientConfig) ApplyDefaults() {
	defaults := DefaultClientConfig()

	if c.Host == "" {
		c.Host = defaults.Host
	}
	if c.Port == 0 {
		c.Port = defaults.Port
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = defaults.DialTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaults.RequestTimeout
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = defaults.RetryAttempts
	}
}

// Validate validates the client configuration.
func (c *ClientConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", c.Port)
	}
	return nil
}

// NewGRPCClient creates a new Qdrant gRPC client and verifies connectivity.
func NewGRPCClient(config *ClientConfig, logger *logging.Logger) (*GRPCClient, error) {
	if config == nil {
		config = DefaultClientConfig()
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	qdrantConfig := &qdrant.Config{
		Host:   config.Host,
		Port:   config.Port,
		UseTLS: config.UseTLS,
		APIKey: config.APIKey,
	}

	// For non-TLS connections, explicitly set insecure credentials.
	if !config.UseTLS {
		qdrantConfig.GrpcOptions = []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		}
	}

	client, err := qdrant.NewClient(qdrantConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	grpcClient := &GRPCClient{
		client: client,
		config: config,
		logger: logger.Named("qdrant"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DialTimeout)
	defer cancel()

	if err := grpcClient.Health(ctx); err != nil {
		_ = client.Close()
		logger.Error(ctx, "qdrant health check failed",
			zap.String("host", config.Host),
			zap.Int("port", config.Port),
			zap.Error(err),
		)
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	logger.Info(ctx, "qdrant connection established",
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
	)

	return grpcClient, nil
}

// Health performs a health check on the Qdrant connection.
func (c *GRPCClient) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	_, err := c.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// CreateCollection creates a cosine-distance collection with the given
// vector dimensionality.
func (c *GRPCClient) CreateCollection(ctx context.Context, name string, vectorSize uint64) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	return c.retryOperation(ctx, func() error {
		return c.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: name,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     vectorSize,
				Distance: qdrant.Distance_Cosine,
			}),
		})
	})
}

// DeleteCollection deletes a collection and all its points.
func (c *GRPCClient) DeleteCollection(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	return c.retryOperation(ctx, func() error {
		return c.client.DeleteCollection(ctx, name)
	})
}

// CollectionExists checks if a collection exists.
func (c *GRPCClient) CollectionExists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var exists bool
	err := c.retryOperation(ctx, func() error {
		info, err := c.client.GetCollectionInfo(ctx, name)
		if err != nil {
			st, ok := status.FromError(err)
			if ok && st.Code() == codes.NotFound {
				exists = false
				return nil // not an error, just doesn't exist
			}
			return err
		}
		exists = info != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// PointCount returns the number of points stored in a collection.
func (c *GRPCClient) PointCount(ctx context.Context, name string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var count uint64
	err := c.retryOperation(ctx, func() error {
		info, err := c.client.GetCollectionInfo(ctx, name)
		if err != nil {
			return err
		}
		count = info.GetPointsCount()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Upsert inserts or updates points in a collection.
func (c *GRPCClient) Upsert(ctx context.Context, collection string, points []*Point) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	qdrantPoints := make([]*qdrant.PointStruct, len(points))
	for i, point := range points {
		qdrantPoints[i] = convertToQdrantPoint(point)
	}

	return c.retryOperation(ctx, func() error {
		_, err := c.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: collection,
			Points:         qdrantPoints,
		})
		return err
	})
}

// Search performs similarity search in a collection.
func (c *GRPCClient) Search(ctx context.Context, collection string, vector []float32, limit uint64, filter *Filter) ([]*ScoredPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var results []*qdrant.ScoredPoint
	err := c.retryOperation(ctx, func() error {
		res, err := c.client.Query(ctx, &qdrant.QueryPoints{
			CollectionName: collection,
			Query:          qdrant.NewQuery(vector...),
			Limit:          qdrant.PtrOf(limit),
			WithPayload:    qdrant.NewWithPayload(true),
			Filter:         convertToQdrantFilter(filter),
		})
		if err != nil {
			return err
		}
		results = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	scoredPoints := make([]*ScoredPoint, len(results))
	for i, result := range results {
		scoredPoints[i] = convertFromQdrantScoredPoint(result)
	}
	return scoredPoints, nil
}

// Close closes the client connection.
func (c *GRPCClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// retryOperation retries an operation with exponential backoff.
func (c *GRPCClient) retryOperation(ctx context.Context, operation func() error) error {
	var lastErr error
	backoff := time.Second

	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isTransientError(err) {
			return err
		}

		if attempt == c.config.RetryAttempts {
			break
		}

		c.logger.Debug(ctx, "retrying operation after transient error",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", c.config.RetryAttempts),
			zap.Error(err),
			zap.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("operation canceled: %w", ctx.Err())
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return fmt.Errorf("operation failed after %d retries: %w", c.config.RetryAttempts, lastErr)
}

// isTransientError checks if an error is transient and should be retried.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// Helper conversion functions

func convertToQdrantPoint(p *Point) *qdrant.PointStruct {
	payload := make(map[string]*qdrant.Value, len(p.Payload))
	for k, v := range p.Payload {
		payload[k] = qdrant.NewValueString(v)
	}

	return &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(p.ID),
		Vectors: qdrant.NewVectors(p.Vector...),
		Payload: payload,
	}
}

func convertFromQdrantScoredPoint(p *qdrant.ScoredPoint) *ScoredPoint {
	return &ScoredPoint{
		Point: Point{
			ID:      p.GetId().GetNum(),
			Payload: extractPayload(p.GetPayload()),
		},
		Score: p.GetScore(),
	}
}

func extractPayload(payload map[string]*qdrant.Value) map[string]string {
	if payload == nil {
		return nil
	}

	result := make(map[string]string, len(payload))
	for k, v := range payload {
		result[k] = v.GetStringValue()
	}
	return result
}

func convertToQdrantFilter(f *Filter) *qdrant.Filter {
	if f == nil || len(f.Must) == 0 {
		return nil
	}

	filter := &qdrant.Filter{
		Must: make([]*qdrant.Condition, len(f.Must)),
	}
	for i, cond := range f.Must {
		filter.Must[i] = qdrant.NewMatch(cond.Field, cond.Match)
	}
	return filter
}

// Ensure GRPCClient implements Client interface
var _ Client = (*GRPCClient)(nil)

package assets

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"screenix/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// CloudinaryClient uploads poster images via the Cloudinary REST API
// using signed uploads.
type CloudinaryClient struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
	log       *zap.Logger
}

func NewCloudinaryClient(config utils.CloudinaryConfig, log *zap.Logger) *CloudinaryClient {
	return &CloudinaryClient{
		client:    resty.New().SetBaseURL("https://api.cloudinary.com/v1_1"),
		cloudName: config.CloudName,
		apiKey:    config.APIKey,
		apiSecret: config.APISecret,
		log:       log.With(zap.String("client", "assets")),
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload stores the file and returns its public URL and asset ID.
func (c *CloudinaryClient) Upload(ctx context.Context, filename string, file io.Reader) (string, string, error) {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := c.sign("timestamp=" + timestamp)

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"api_key":   c.apiKey,
			"timestamp": timestamp,
			"signature": signature,
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/%s/image/upload", c.cloudName))

	if err != nil {
		return "", "", fmt.Errorf("upload asset %s: %w", filename, err)
	}
	if resp.IsError() {
		c.log.Error("Asset upload failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("filename", filename),
		)
		return "", "", fmt.Errorf("upload asset %s: status %d", filename, resp.StatusCode())
	}

	c.log.Info("Asset uploaded",
		zap.String("filename", filename),
		zap.String("public_id", result.PublicID),
	)
	return result.SecureURL, result.PublicID, nil
}

// sign computes the Cloudinary request signature: SHA-1 over the sorted
// parameter string concatenated with the API secret.
func (c *CloudinaryClient) sign(params string) string {
	sum := sha1.Sum([]byte(params + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

package helper

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"ticketing_admin/model"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore là nơi lưu ảnh event
type ImageStore interface {
	Destroy(ctx context.Context, imageURL string) error
	Sign(folder, publicID string, now time.Time) model.UploadSignature
}

type CloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld, cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, imageURL string) error {
	publicID := ExtractPublicID(imageURL)
	if publicID == "" {
		return nil
	}
	invalidate := true
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
		Invalidate:   &invalidate,
	})
	return err
}

// Sign returns the params a browser needs for a signed direct upload.
func (s *CloudinaryStore) Sign(folder, publicID string, now time.Time) model.UploadSignature {
	ts := now.Unix()
	params := map[string]string{"timestamp": fmt.Sprintf("%d", ts)}
	if folder != "" {
		params["folder"] = folder
	}
	if publicID != "" {
		params["public_id"] = publicID
	}

	return model.UploadSignature{
		Signature: SignParams(params, s.apiSecret),
		Timestamp: ts,
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
		Folder:    folder,
		PublicID:  publicID,
	}
}

// SignParams: sha1 của các cặp k=v đã sort (không escape) nối với secret, theo cách cloudinary ký.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var toSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			toSign.WriteString("&")
		}
		toSign.WriteString(k)
		toSign.WriteString("=")
		toSign.WriteString(params[k])
	}
	toSign.WriteString(secret)

	h := sha1.New()
	h.Write([]byte(toSign.String()))
	return hex.EncodeToString(h.Sum(nil))
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// ExtractPublicID đổi
// https://res.cloudinary.com/<cloud>/image/upload/[v123/]<folder>/<id>.<ext>
// thành <folder>/<id>. URL khác trả về "".
func ExtractPublicID(url string) string {
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok || rest == "" {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && versionSegment.MatchString(parts[0]) {
		parts = parts[1:]
	}
	publicID := strings.Join(parts, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}

package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore accepts raw file bytes and returns a stable public URL. The
// backend is opaque to callers: local disk in development, Cloudinary when
// its credentials are configured.
type BlobStore interface {
	Put(name string, data []byte, contentType string) (string, error)
}

// LocalStore writes uploads under Dir and serves them from BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(name string, data []byte, contentType string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + name, nil
}

// CloudinaryStore uploads through Cloudinary's signed REST endpoint.
// Configuration comes from CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY,
// CLOUDINARY_API_SECRET and the optional CLOUDINARY_FOLDER.
type CloudinaryStore struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Client    *http.Client
}

func NewCloudinaryStoreFromEnv() *CloudinaryStore {
	return &CloudinaryStore{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    os.Getenv("CLOUDINARY_FOLDER"),
		Client:    http.DefaultClient,
	}
}

// Configured reports whether the required credentials are present.
func (s *CloudinaryStore) Configured() bool {
	return s.CloudName != "" && s.APIKey != "" && s.APISecret != ""
}

func (s *CloudinaryStore) Put(name string, data []byte, contentType string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("cloudinary credentials are not configured")
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	payload := base64.StdEncoding.EncodeToString(data)

	publicID := strings.TrimSuffix(name, filepath.Ext(name))
	if s.Folder != "" {
		publicID = s.Folder + "/" + publicID
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + s.CloudName + "/image/upload"

	form := url.Values{}
	form.Add("file", "data:"+contentType+";base64,"+payload)
	form.Add("api_key", s.APIKey)
	form.Add("public_id", publicID)

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Add("timestamp", timestamp)

	// Cloudinary signs the sorted params with SHA1 over the API secret.
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, s.APISecret)
	form.Add("signature", fmt.Sprintf("%x", sha1.Sum([]byte(signatureString))))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed with status %d: %s", res.StatusCode, body)
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", err
	}
	if cloudRes.Error.Message != "" {
		return "", fmt.Errorf("cloudinary error: %s", cloudRes.Error.Message)
	}

	out := cloudRes.SecureURL
	if out == "" {
		out = cloudRes.URL
	}
	if out == "" {
		return "", fmt.Errorf("cloudinary returned no URL")
	}
	return out, nil
}

package upload

// UploadResponse acknowledges a stored audio file
type UploadResponse struct {
	Success   bool   `json:"success"`
	ObjectKey string `json:"object_key"`
	MediaURI  string `json:"media_uri"`
}

// FileURLResponse carries a presigned download URL
type FileURLResponse struct {
	Success   bool   `json:"success"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}

// FileListResponse lists stored object keys under a prefix
type FileListResponse struct {
	Success bool     `json:"success"`
	Prefix  string   `json:"prefix,omitempty"`
	Files   []string `json:"files"`
}

package types

// BufferedFile is an uploaded multipart part held fully in memory.
type BufferedFile struct {
	FieldName    string `json:"fieldName" validate:"required"`
	OriginalName string `json:"originalName" validate:"required"`
	MimeType     string `json:"mimetype" validate:"required"`
	Size         int64  `json:"size" validate:"gte=0"`
	Buffer       []byte `json:"buffer"`
}

type BufferedFiles map[string][]BufferedFile

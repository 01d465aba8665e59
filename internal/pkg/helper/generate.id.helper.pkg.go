package helper

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	urlAlphabet  = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"
	fileAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

func GenerateID() (string, error) {
	id, err := gonanoid.Generate(urlAlphabet, 16)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateFileID returns a DOM-safe identifier for an attachment tile.
func GenerateFileID() (string, error) {
	id, err := gonanoid.Generate(fileAlphabet, 12)
	if err != nil {
		return "", err
	}
	return "file-" + id, nil
}

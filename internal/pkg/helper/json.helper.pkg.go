package helper

import (
	"encoding/json"

	"complaint-portal/internal/pkg/logger"
)

func JSONToString(payload any) (string, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Debug.Println("JSONToString:", err)
		return "", err
	}
	return string(jsonBytes), nil
}

// JSONToStruct re-encodes a decoded payload (usually HTTPAPIResponse.Data)
// into a typed result.
func JSONToStruct[I any](payload any, result *I) error {
	if raw, ok := payload.([]byte); ok {
		return ByteToStruct(raw, result)
	}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Debug.Println("JSONToStruct:", err)
		return err
	}
	return ByteToStruct(jsonBytes, result)
}

func ByteToStruct[I any](payload []byte, result *I) error {
	return json.Unmarshal(payload, result)
}

func StringPtr(s string) *string {
	return &s
}

package constants

import "os"

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

// GetMetadataEndpoint returns the DynamoDB endpoint for score
// metadata, or "" when metadata lookups are disabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// MetadataTable is the DynamoDB table holding score metadata.
const MetadataTable = "meterspan-metadata"

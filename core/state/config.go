package state

// Drivers for the watermark store.
const (
	DriverFile = "file"
	DriverS3   = "s3"
)

// Config holds configuration for the sync watermark store.
type Config struct {
	// Driver selects where the watermark is persisted (file or s3).
	Driver string `mapstructure:"driver" default:"file"`
	// Path is the watermark file location for the file driver.
	Path string `mapstructure:"path" default:"watermark.json"`
	// Object is the object key for the s3 driver.
	Object string `mapstructure:"object" default:"state/watermark.json"`
}
